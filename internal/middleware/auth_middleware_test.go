package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jdelacruz/ssis-backend/internal/pkg/auth"
)

func newTestRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	protected := router.Group("/protected")
	protected.Use(m.JWTAuth())
	{
		protected.GET("/me", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"user_id": CurrentUserID(c)})
		})

		admin := protected.Group("/admin")
		admin.Use(m.RoleRequired("admin"))
		admin.GET("", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
	}
	return router
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
}

func TestJWTAuthRejectsMissingToken(t *testing.T) {
	router := newTestRouter(newTestJWTService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected/me", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuthAcceptsCookie(t *testing.T) {
	jwtService := newTestJWTService()
	router := newTestRouter(jwtService)

	token, _, err := jwtService.GenerateAccessToken(7, "alice", "user")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.AccessTokenCookie, Value: token})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}
}

func TestJWTAuthAcceptsBearerHeader(t *testing.T) {
	jwtService := newTestJWTService()
	router := newTestRouter(jwtService)

	token, _, err := jwtService.GenerateAccessToken(7, "alice", "user")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}
}

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
	router := newTestRouter(newTestJWTService())

	other := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "other-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	token, _, err := other.GenerateAccessToken(7, "alice", "user")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.AccessTokenCookie, Value: token})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestRoleRequired(t *testing.T) {
	jwtService := newTestJWTService()
	router := newTestRouter(jwtService)

	tests := []struct {
		name string
		role string
		want int
	}{
		{name: "admin allowed", role: "admin", want: http.StatusOK},
		{name: "user forbidden", role: "user", want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, _, err := jwtService.GenerateAccessToken(1, "someone", tt.role)
			if err != nil {
				t.Fatalf("GenerateAccessToken: %v", err)
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected/admin", nil)
			req.AddCookie(&http.Cookie{Name: auth.AccessTokenCookie, Value: token})
			router.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
