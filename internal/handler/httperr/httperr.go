package httperr

import (
	"net/http"

	"petsitter-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// ValidationDetail names the fields a rejected submission is missing.
type ValidationDetail struct {
	MissingFields []string `json:"missingFields"`
}

// Rule maps a sentinel error to the status and message sent to the client.
type Rule struct {
	Target  error
	Status  int
	Message string
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortMapped aborts with the first rule whose target matches err, or 500.
func AbortMapped(c *gin.Context, err error, rules []Rule) {
	for _, r := range rules {
		if errs.Is(err, r.Target) {
			AbortWithError(c, r.Status, err, r.Message, nil)
			return
		}
	}
	AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
}

func AbortValidation(c *gin.Context, err error, fields []string) {
	AbortWithError(c, http.StatusUnprocessableEntity, err, "Submission is incomplete", ValidationDetail{MissingFields: fields})
}
