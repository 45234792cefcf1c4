package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewErr_Defaults(t *testing.T) {
	e := NewErr(0, "", nil)
	assert.Equal(t, http.StatusNotImplemented, e.HTTPStatusCode)
	assert.Equal(t, "Ambiguous error.", e.Message)
}

func TestErr_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	e := ErrInternalServerError("Error creating chat.", cause)

	assert.ErrorIs(t, e, cause)
	assert.Equal(t, "Error creating chat.: boom", e.Error())
}

func TestRenderErr(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      *Err
		wantCode int
		wantBody string
	}{
		{"bad request", ErrBadRequest("Request must contain username {string}.", errors.New("x")), http.StatusBadRequest, `{"message":"Request must contain username {string}."}`},
		{"not found", ErrNotFound("Chat not found."), http.StatusNotFound, `{"message":"Chat not found."}`},
		{"store error hides cause", ErrStore(http.StatusNotImplemented, "Error retrieving chat.", errors.New("secret")), http.StatusNotImplemented, `{"message":"Error retrieving chat."}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)

			RenderErr(ctx, tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.True(t, ctx.IsAborted())
		})
	}
}
