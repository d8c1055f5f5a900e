package resp

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func statusFor(err error) int {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Error(c, err)
	return w.Code
}

func TestErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", apperr.NotFound("order not found"), http.StatusNotFound},
		{"invalid input", apperr.InvalidInput("bad slot"), http.StatusBadRequest},
		{"invalid state", apperr.InvalidState("cart is empty"), http.StatusUnprocessableEntity},
		{"conflict", apperr.Conflict("slot booked"), http.StatusConflict},
		{"gorm record not found", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, statusFor(tc.err))
		})
	}
}
