package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"tailorshop/internal/domain"
	authsvc "tailorshop/internal/service/auth"
)

func protectedTestRouter(t *testing.T, auth AuthService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(authMiddleware(auth))
	router.GET("/protected", func(c *gin.Context) {
		p := principalFrom(c)
		c.JSON(http.StatusOK, gin.H{"email": p.Email, "role": p.Role})
	})
	return router
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router := protectedTestRouter(t, &stubAuthSvc{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	router := protectedTestRouter(t, &stubAuthSvc{})

	for _, header := range []string{"token-without-scheme", "Basic abc", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	router := protectedTestRouter(t, &stubAuthSvc{verifyErr: authsvc.ErrInvalidToken})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ValidTokenSetsPrincipal(t *testing.T) {
	router := protectedTestRouter(t, &stubAuthSvc{
		principal: domain.Principal{UserID: "u1", Email: "a@x.com", Role: domain.RoleCustomer},
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if body != `{"email":"a@x.com","role":"customer"}` {
		t.Fatalf("unexpected body: %s", body)
	}
}
