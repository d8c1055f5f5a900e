package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCurrentUserAndRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Zero(t, CurrentUserID(c))
	assert.Empty(t, CurrentRole(c))

	c.Set("userId", uint(7))
	c.Set("role", "admin")
	assert.Equal(t, uint(7), CurrentUserID(c))
	assert.Equal(t, "admin", CurrentRole(c))
}
