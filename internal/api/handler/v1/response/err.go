package response

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const ambiguousErrMessage = "Ambiguous error."

// Err is rendered as {"message": "..."}. The wrapped error is only logged.
type Err struct {
	HTTPStatusCode int    `json:"-"`
	Message        string `json:"message" example:"Error retrieving chat."`
	Err            error  `json:"-"`
}

func (e *Err) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

func (e *Err) Unwrap() error {
	return e.Err
}

// NewErr falls back to 501 and a generic message when either is missing.
func NewErr(statusCode int, message string, err error) *Err {
	if statusCode == 0 {
		statusCode = http.StatusNotImplemented
	}
	if message == "" {
		message = ambiguousErrMessage
	}

	return &Err{
		HTTPStatusCode: statusCode,
		Message:        message,
		Err:            err,
	}
}

func ErrBadRequest(message string, err error) *Err {
	return NewErr(http.StatusBadRequest, message, err)
}

func ErrNotFound(message string) *Err {
	return NewErr(http.StatusNotFound, message, nil)
}

func ErrInternalServerError(message string, err error) *Err {
	return NewErr(http.StatusInternalServerError, message, err)
}

// ErrStore reports a failed store operation with the given status.
func ErrStore(statusCode int, message string, err error) *Err {
	return NewErr(statusCode, message, err)
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error(e.Message,
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("path", ctx.FullPath()),
			zap.Error(e.Err),
		)
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

// Render writes a successful JSON payload.
func Render(ctx *gin.Context, statusCode int, payload any) {
	ctx.JSON(statusCode, payload)
}
