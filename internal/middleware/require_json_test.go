package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func jsonGateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequireJSON())
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	router.POST("/items", ok)
	router.PUT("/items", ok)
	router.DELETE("/items", ok)
	router.GET("/items", ok)
	return router
}

func TestRequireJSON(t *testing.T) {
	router := jsonGateRouter()

	tests := []struct {
		name        string
		method      string
		body        string
		contentType string
		want        int
	}{
		{"post json", http.MethodPost, "{}", "application/json", http.StatusOK},
		{"post json with charset", http.MethodPost, "{}", "application/json; charset=utf-8", http.StatusOK},
		{"post wrong type", http.MethodPost, "{}", "plain/text", http.StatusUnsupportedMediaType},
		{"post no type", http.MethodPost, "bad data", "", http.StatusUnsupportedMediaType},
		{"put wrong type", http.MethodPut, "{}", "plain/text", http.StatusUnsupportedMediaType},
		{"delete no body", http.MethodDelete, "", "", http.StatusOK},
		{"delete json body", http.MethodDelete, "{}", "application/json", http.StatusOK},
		{"delete wrong type", http.MethodDelete, "", "plain/text", http.StatusUnsupportedMediaType},
		{"delete body no type", http.MethodDelete, "bad data", "", http.StatusUnsupportedMediaType},
		{"get untouched", http.MethodGet, "", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body == "" {
				req = httptest.NewRequest(tt.method, "/items", nil)
			} else {
				req = httptest.NewRequest(tt.method, "/items", strings.NewReader(tt.body))
			}
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
