//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"petsitter-booking/cmd/bootstrap"
	"petsitter-booking/cmd/bootstrap/components"
	"petsitter-booking/internal/pkg/config"
	"petsitter-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// E2Eテスト用アプリケーション構築関数
// ストアはメモリ上にあるので、アプリを作り直せば状態がリセットされる
// ------------------------------------------------------------
func buildE2EApp(t *testing.T) (*gin.Engine, config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(
			config.NewTestConfig,
			bootstrap.NewBookingLocation,
			bootstrap.NewCatalog,
		),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.NotifierModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		// ログを無効にして起動
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	require.NotNil(t, router, "Routerのセットアップに失敗")
	return router, cfg
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Config config.Config
}

func (s *SharedSuite) SetupTest() {
	s.Router, s.Config = buildE2EApp(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	s.Router, s.Config = buildE2EApp(s.T())
}

// Do sends a JSON request and requires the expected status.
func (s *SharedSuite) Do(method, path string, body any, expectStatus int, target any) {
	t := s.T()
	t.Helper()
	rec := httptest.PerformRequest(t, s.Router, method, path, body)
	require.Equal(t, expectStatus, rec.Code, "%s %s: %s", method, path, rec.Body.String())
	if target != nil {
		require.NoError(t, httptest.DecodeResponseBody(t, rec.Body, target))
	}
}

// BookingDate is a calendar day a week after now in the booking zone.
func (s *SharedSuite) BookingDate(offsetDays int) string {
	return time.Now().In(s.Config.Booking.Location()).AddDate(0, 0, 7+offsetDays).Format(time.DateOnly)
}

func SessionURL(id string, suffix string) string {
	return fmt.Sprintf("/api/sessions/%s%s", id, suffix)
}

func (s *SharedSuite) StartSession() string {
	var body struct {
		ID string `json:"id"`
	}
	s.Do(http.MethodPost, "/api/sessions", nil, http.StatusCreated, &body)
	s.Require().NotEmpty(body.ID)
	return body.ID
}
