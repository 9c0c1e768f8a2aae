package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kestrelpoint/funddesk-backend/internal/domain"
	"github.com/kestrelpoint/funddesk-backend/internal/result"
)

// ProblemDetails is the error body for every failed request. ErrorCode
// carries the domain error code (e.g. "Fund.Conflict") so clients can
// branch without parsing Detail.
type ProblemDetails struct {
	Title     string `json:"title"`
	Detail    string `json:"detail"`
	Status    int    `json:"status"`
	Instance  string `json:"instance"`
	ErrorCode string `json:"errorCode"`
}

func RespondProblem(c *gin.Context, status int, err *result.Error) {
	if err == nil {
		err = domain.ServerError("General", "")
	}
	c.JSON(status, ProblemDetails{
		Title:     http.StatusText(status),
		Detail:    err.Message,
		Status:    status,
		Instance:  c.Request.Method + " " + c.Request.URL.Path,
		ErrorCode: err.Code,
	})
}

// RespondFailure maps a failed Result onto its problem body using the
// status the Result already classified.
func RespondFailure[T any](c *gin.Context, res result.Result[T]) {
	RespondProblem(c, res.Status(), res.Err())
}

// RespondBadRequest is the shared answer for malformed bodies and
// unparseable route parameters.
func RespondBadRequest(c *gin.Context) {
	RespondProblem(c, http.StatusBadRequest, domain.ErrValidation)
}
