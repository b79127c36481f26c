package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testCookieName = "cardapio_session"

func testContext(t *testing.T, authHeader, cookieValue string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}
	if cookieValue != "" {
		c.Request.AddCookie(&http.Cookie{Name: testCookieName, Value: cookieValue})
	}

	return c
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name        string
		authHeader  string
		cookieValue string
		want        string
	}{
		{"bearer header", "Bearer header-token", "", "header-token"},
		{"cookie only", "", "cookie-token", "cookie-token"},
		{"bearer wins over cookie", "Bearer header-token", "cookie-token", "header-token"},
		{"basic header falls back to cookie", "Basic dXNlcjpwYXNz", "cookie-token", "cookie-token"},
		{"bare bearer falls back to cookie", "Bearer", "cookie-token", "cookie-token"},
		{"nothing", "", "", ""},
		{"basic header without cookie", "Basic dXNlcjpwYXNz", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testContext(t, tt.authHeader, tt.cookieValue)
			assert.Equal(t, tt.want, extractToken(c, testCookieName))
		})
	}
}
