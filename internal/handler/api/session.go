package api

import (
	"errors"
	"net/http"

	"petsitter-booking/internal/domain/session"
	reqdto "petsitter-booking/internal/handler/dto/request"
	resdto "petsitter-booking/internal/handler/dto/response"
	"petsitter-booking/internal/handler/httperr"
	"petsitter-booking/internal/usecase/commands"
	"petsitter-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionHandler struct {
	cmds     commands.SessionCommands
	q        queries.SessionQueries
	requests queries.AdminQueries
}

func NewSessionHandler(cmds commands.SessionCommands, q queries.SessionQueries, requests queries.AdminQueries) *SessionHandler {
	return &SessionHandler{cmds: cmds, q: q, requests: requests}
}

func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *SessionHandler) load(c *gin.Context, id uuid.UUID) (*resdto.SessionResponse, bool) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortMapped(c, err, sessionErrRules)
		return nil, false
	}
	return resdto.FromSessionView(view), true
}

func (h *SessionHandler) respond(c *gin.Context, id uuid.UUID) {
	res, ok := h.load(c, id)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Start booking session
// @Description Start a customer booking session on the booking form
// @Tags sessions
// @Produce json
// @Success 201 {object} resdto.SessionResponse
// @Failure 500 {object} map[string]string
// @Router /sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	id, err := h.cmds.Create(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create session failed", nil)
		return
	}
	res, ok := h.load(c, id)
	if !ok {
		return
	}
	c.Header("Location", "/api/sessions/"+id.String())
	c.JSON(http.StatusCreated, res)
}

// @Summary Get booking session
// @Description Current view, selection, price, draft and admin badge of a session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	h.respond(c, id)
}

// @Summary Update selection
// @Description Change service type, pet count, duration or date. The selection is normalised to offered options
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.UpdateSelectionRequest true "Selection changes"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sessions/{id}/selection [put]
func (h *SessionHandler) UpdateSelection(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateSelection(c.Request.Context(), id, req.ToInput()); err != nil {
		httperr.AbortMapped(c, err, sessionErrRules)
		return
	}
	h.respond(c, id)
}

// @Summary Update contact
// @Description Save the contact form fields. Empty fields are allowed until submission
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.UpdateContactRequest true "Contact fields"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sessions/{id}/contact [put]
func (h *SessionHandler) UpdateContact(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateContact(c.Request.Context(), id, in); err != nil {
		httperr.AbortMapped(c, err, sessionErrRules)
		return
	}
	h.respond(c, id)
}

// @Summary Toggle time slot
// @Description Add or remove a drop-in visit in a time window on the selected date
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.ToggleTimeSlotRequest true "Time window"
// @Success 200 {object} resdto.ToggleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sessions/{id}/draft/time-slots [post]
func (h *SessionHandler) ToggleTimeSlot(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.ToggleTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.ToggleTimeSlot(c.Request.Context(), id, req.Category)
	if err != nil {
		httperr.AbortMapped(c, err, sessionErrRules)
		return
	}
	res, ok := h.load(c, id)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.ToggleResponse{Result: result.String(), Session: res})
}

// @Summary Toggle full day
// @Description Add or remove a full-day booking of the selected service on the selected date
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.ToggleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sessions/{id}/draft/full-day [post]
func (h *SessionHandler) ToggleFullDay(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	result, err := h.cmds.ToggleFullDay(c.Request.Context(), id)
	if err != nil {
		httperr.AbortMapped(c, err, sessionErrRules)
		return
	}
	res, ok := h.load(c, id)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.ToggleResponse{Result: result.String(), Session: res})
}

// @Summary Remove draft slot
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param slotId path string true "Draft slot ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sessions/{id}/draft/slots/{slotId} [delete]
func (h *SessionHandler) RemoveSlot(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	slotID, err := uuid.Parse(c.Param("slotId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot id", nil)
		return
	}
	if err := h.cmds.RemoveSlot(c.Request.Context(), id, slotID); err != nil {
		httperr.AbortMapped(c, err, sessionErrRules)
		return
	}
	h.respond(c, id)
}

// @Summary Submit appointment request
// @Description Submit the draft as one appointment request. Every contact field and at least one slot are required
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 201 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} map[string]string
// @Router /sessions/{id}/submit [post]
func (h *SessionHandler) Submit(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	result, err := h.cmds.Submit(c.Request.Context(), id)
	if err != nil {
		var verr *session.ValidationError
		if errors.As(err, &verr) {
			httperr.AbortValidation(c, err, verr.Fields)
			return
		}
		httperr.AbortMapped(c, err, sessionErrRules)
		return
	}
	view, err := h.requests.GetRequest(c.Request.Context(), result.RequestID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load request", nil)
		return
	}
	c.Header("Location", "/api/admin/requests/"+result.RequestID.String())
	c.JSON(http.StatusCreated, resdto.FromRequestView(view))
}

// @Summary Acknowledge submission
// @Description Return from the success view to the booking form
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sessions/{id}/acknowledge [post]
func (h *SessionHandler) Acknowledge(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	if err := h.cmds.Acknowledge(c.Request.Context(), id); err != nil {
		httperr.AbortMapped(c, err, sessionErrRules)
		return
	}
	h.respond(c, id)
}

// @Summary Select tab
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SelectTabRequest true "Tab"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sessions/{id}/view [put]
func (h *SessionHandler) SelectTab(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.SelectTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.SelectTab(c.Request.Context(), id, req.Tab); err != nil {
		httperr.AbortMapped(c, err, sessionErrRules)
		return
	}
	h.respond(c, id)
}
