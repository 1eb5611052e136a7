package httperr

import (
	"log/slog"
	"net/http"

	"elearning-storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Response is the envelope written for every API reply.
type Response struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

func OK(c *gin.Context, data any) {
	Respond(c, http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	Respond(c, http.StatusCreated, data)
}

func Respond(c *gin.Context, status int, data any) {
	c.JSON(status, Response{Status: status, Success: true, Data: data})
}

// AbortWithError writes the failure envelope and records err on the context
// so logging and monitoring still see the original cause.
func AbortWithError(c *gin.Context, status int, err error, msg, code string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg, Code: code}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a use-case error to its status, message and code.
// Internal failures are logged with the top of their stack.
func Abort(c *gin.Context, err error) {
	m := Lookup(err)
	if m.Status >= http.StatusInternalServerError && m.Status != http.StatusBadGateway {
		slog.ErrorContext(c.Request.Context(), "internal error",
			"path", c.Request.URL.Path,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12))
	}
	AbortWithError(c, m.Status, err, m.Message, m.Code)
}

// Fail writes a failure envelope for a request rejected before any use case ran.
func Fail(c *gin.Context, status int, msg, code string) {
	c.AbortWithStatusJSON(status, Response{Status: status, Error: msg, Code: code})
}
