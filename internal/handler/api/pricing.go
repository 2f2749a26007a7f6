package api

import (
	"net/http"

	reqdto "petsitter-booking/internal/handler/dto/request"
	resdto "petsitter-booking/internal/handler/dto/response"
	"petsitter-booking/internal/handler/httperr"
	"petsitter-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	q queries.PricingQueries
}

func NewPricingHandler(q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{q: q}
}

// @Summary List services
// @Description List bookable services with their pet options and pricing notes
// @Tags pricing
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Router /pricing/services [get]
func (h *PricingHandler) Services(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromServiceViews(h.q.Services()))
}

// @Summary Quote a selection
// @Description Normalise a service selection and price it. Price is null when unavailable
// @Tags pricing
// @Produce json
// @Param service query string true "Service type"
// @Param pets query int false "Number of pets (default 1)"
// @Param duration query int false "Visit duration in minutes"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Router /pricing/quote [get]
func (h *PricingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.q.Quote(req.ToInput())
	if err != nil {
		httperr.AbortMapped(c, err, pricingErrRules)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}
