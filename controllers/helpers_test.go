package controllers

import (
	"classifieds/services"
	"classifieds/utils"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("wrapped: %w", services.ErrNotFound), http.StatusNotFound},
		{"forbidden", services.ErrForbidden, http.StatusForbidden},
		{"unauthenticated", services.ErrUnauthenticated, http.StatusUnauthorized},
		{"invalid credentials", services.ErrInvalidCredentials, http.StatusUnauthorized},
		{"file too large", utils.ErrFileTooLarge, http.StatusBadRequest},
		{"invalid type", utils.ErrInvalidFileType, http.StatusBadRequest},
		{"missing image", &services.ImageProcessingError{Op: "read", Err: fs.ErrNotExist}, http.StatusNotFound},
		{"image write fault", &services.ImageProcessingError{Op: "write", Err: errors.New("disk full")}, http.StatusInternalServerError},
		{"anything else", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(c, tt.err)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
			if !c.IsAborted() {
				t.Error("context not aborted")
			}
		})
	}
}

func TestParseID(t *testing.T) {
	for in, ok := range map[string]bool{"12": true, "0": false, "-3": false, "abc": false} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: in}}

		_, got := parseID(c, "id")
		if got != ok {
			t.Errorf("parseID(%q) ok = %v", in, got)
		}
		if !ok && w.Code != http.StatusBadRequest {
			t.Errorf("parseID(%q) status = %d", in, w.Code)
		}
	}
}
