package api

import (
	"net/http"

	reqdto "petsitter-booking/internal/handler/dto/request"
	resdto "petsitter-booking/internal/handler/dto/response"
	"petsitter-booking/internal/handler/httperr"
	"petsitter-booking/internal/usecase/commands"
	"petsitter-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	cmds commands.AdminCommands
	q    queries.AdminQueries
}

func NewAdminHandler(cmds commands.AdminCommands, q queries.AdminQueries) *AdminHandler {
	return &AdminHandler{cmds: cmds, q: q}
}

func requestID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *AdminHandler) respond(c *gin.Context, id uuid.UUID) {
	view, err := h.q.GetRequest(c.Request.Context(), id)
	if err != nil {
		httperr.AbortMapped(c, err, adminErrRules)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

// @Summary List appointment requests
// @Description All submitted requests, newest first, with per-slot status and totals
// @Tags admin
// @Produce json
// @Success 200 {object} map[string][]resdto.RequestResponse
// @Failure 500 {object} map[string]string
// @Router /admin/requests [get]
func (h *AdminHandler) List(c *gin.Context) {
	views, err := h.q.ListRequests(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": resdto.FromRequestList(views)})
}

// @Summary Get appointment request
// @Tags admin
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/requests/{id} [get]
func (h *AdminHandler) Get(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		return
	}
	h.respond(c, id)
}

// @Summary Set slot status
// @Description Accept, deny or reset one slot of a request
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param slotId path string true "Slot ID"
// @Param request body reqdto.UpdateStatusRequest true "New status"
// @Success 200 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/requests/{id}/slots/{slotId} [patch]
func (h *AdminHandler) UpdateSlotStatus(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		return
	}
	slotID, err := uuid.Parse(c.Param("slotId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot id", nil)
		return
	}
	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.SetSlotStatus(c.Request.Context(), id, slotID, req.Status); err != nil {
		httperr.AbortMapped(c, err, adminErrRules)
		return
	}
	h.respond(c, id)
}

// @Summary Set status of every slot
// @Description Applies the status to all slots of the request, including ones already decided
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body reqdto.UpdateStatusRequest true "New status"
// @Success 200 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/requests/{id}/slots [patch]
func (h *AdminHandler) UpdateAllSlotStatuses(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.SetAllSlotStatuses(c.Request.Context(), id, req.Status); err != nil {
		httperr.AbortMapped(c, err, adminErrRules)
		return
	}
	h.respond(c, id)
}

// @Summary Admin badge
// @Description Unread is true while any slot of any request is still pending
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.BadgeResponse
// @Failure 500 {object} map[string]string
// @Router /admin/badge [get]
func (h *AdminHandler) Badge(c *gin.Context) {
	badge, err := h.q.Badge(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBadgeView(badge))
}
