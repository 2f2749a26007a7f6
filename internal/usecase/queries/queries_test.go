//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"petsitter-booking/internal/domain/appointment"
	"petsitter-booking/internal/domain/pricing"
	"petsitter-booking/internal/domain/session"
	"petsitter-booking/internal/infra"
	"petsitter-booking/internal/infra/repository"
	"petsitter-booking/internal/pkg/errs"
	"petsitter-booking/internal/usecase/queries"
	"petsitter-booking/tests/common/builder"
	queriesmock "petsitter-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func catalog(t *testing.T) *pricing.Catalog {
	t.Helper()
	c, err := pricing.DefaultCatalog()
	require.NoError(t, err)
	return c
}

func TestPricingQueries(t *testing.T) {
	q := queries.NewPricingQueries(catalog(t))

	t.Run("services in display order", func(t *testing.T) {
		services := q.Services()
		require.Len(t, services, 4)
		assert.Equal(t, "drop_in", services[0].Type)
		assert.Equal(t, "duration_table", services[0].RuleKind)
		assert.Equal(t, "24-Hour Care", services[3].Label)
	})

	t.Run("quote", func(t *testing.T) {
		v, err := q.Quote(queries.QuoteInput{ServiceType: "24_hour_care", NumberOfPets: 3})
		require.NoError(t, err)
		require.NotNil(t, v.Price)
		assert.Equal(t, "215.00", *v.Price)
		assert.Empty(t, v.DurationOptions)
	})

	t.Run("quote normalises the selection", func(t *testing.T) {
		v, err := q.Quote(queries.QuoteInput{ServiceType: "drop_in", NumberOfPets: 3, DurationMinutes: 30})
		require.NoError(t, err)
		assert.Equal(t, 45, v.DurationMinutes)
		assert.Equal(t, []int{45, 60}, v.DurationOptions)
		assert.Equal(t, "40.00", *v.Price)
	})

	t.Run("unknown service", func(t *testing.T) {
		_, err := q.Quote(queries.QuoteInput{ServiceType: "grooming", NumberOfPets: 1})
		assert.ErrorIs(t, err, pricing.ErrUnknownServiceType)
	})
}

func TestAdminQueries(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

	repo := repository.NewRequestRepository()
	older := builder.NewRequestBuilder().WithSubmittedAt(base).MustBuildDomain()
	newer := builder.NewRequestBuilder().
		AddOvernightSlot(base.Add(72*time.Hour), 2, pricing.Dollars(125)).
		WithSubmittedAt(base.Add(time.Second)).
		MustBuildDomain()
	require.NoError(t, repo.Append(ctx, older))
	require.NoError(t, repo.Append(ctx, newer))
	q := queries.NewAdminQueries(repo)

	t.Run("list newest first with derived fields", func(t *testing.T) {
		list, err := q.ListRequests(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, newer.ID(), list[0].ID)
		assert.Equal(t, "160.00", list[0].Total)
		assert.True(t, list[0].AllPending)
		assert.Equal(t, "Overnight (8pm - 8am)", list[0].Slots[1].ServiceLabel)
		assert.Equal(t, older.ID(), list[1].ID)
	})

	t.Run("accepting one slot clears allPending", func(t *testing.T) {
		_, err := repo.SetSlotStatus(ctx, older.ID(), older.Slots()[0].ID(), appointment.StatusAccepted)
		require.NoError(t, err)

		v, err := q.GetRequest(ctx, older.ID())
		require.NoError(t, err)
		assert.Equal(t, "35.00", v.Total)
		assert.Equal(t, "accepted", v.Slots[0].Status)
		assert.False(t, v.AllPending)
		assert.False(t, v.HasPending)

		badge, err := q.Badge(ctx)
		require.NoError(t, err)
		assert.True(t, badge.Unread)
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := q.GetRequest(ctx, uuid.New())
		assert.ErrorIs(t, err, errs.ErrRequestNotFound)
	})
}

func TestSessionQueries(t *testing.T) {
	ctx := context.Background()
	est := time.FixedZone("EST", -5*60*60)

	t.Run("view of a fresh session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := queriesmock.NewMockSessionReadStore(ctrl)
		requests := queriesmock.NewMockRequestReadStore(ctrl)

		s := session.New(uuid.Nil, catalog(t), time.Date(2026, 10, 15, 9, 0, 0, 0, est))
		_, err := s.ToggleTimeSlot(appointment.Evening)
		require.NoError(t, err)

		sessions.EXPECT().Get(ctx, s.ID()).Return(s, nil)
		requests.EXPECT().HasPending(ctx).Return(true, nil)

		v, err := queries.NewSessionQueries(sessions, requests).GetByID(ctx, s.ID())
		require.NoError(t, err)
		assert.Equal(t, "customer_form", v.View)
		assert.Equal(t, "2026-10-15", v.Selection.Date)
		assert.Equal(t, "25.00", *v.Price)
		assert.Equal(t, []int{30, 45, 60}, v.DurationOptions)
		require.Len(t, v.DraftSlots, 1)
		assert.Equal(t, "4pm - 8pm", v.DraftSlots[0].TimeLabel)
		assert.Equal(t, "25.00", v.DraftTotal)
		assert.Equal(t, []string{"2026-10-15"}, v.DatesWithSlots)
		assert.True(t, v.Badge)
	})

	t.Run("unknown session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := queriesmock.NewMockSessionReadStore(ctrl)
		requests := queriesmock.NewMockRequestReadStore(ctrl)
		id := uuid.New()
		sessions.EXPECT().Get(ctx, id).Return(nil, infra.WrapRepoErr("session not found", nil, infra.KindNotFound))

		_, err := queries.NewSessionQueries(sessions, requests).GetByID(ctx, id)
		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})
}
