package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"loanportal-backend/internal/domain/identity"
)

type verifierStub struct {
	claims *identity.Claims
	err    error
}

func (v *verifierStub) Verify(token string) (*identity.Claims, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.claims, nil
}

func authEcho(v identity.Verifier, admin bool) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	g := e.Group("/api", WithAuth(v))
	g.GET("/me", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"user_id": c.Get(CtxUserID),
			"role":    c.Get(CtxRole),
		})
	})
	adm := g.Group("/admin")
	if admin {
		adm.Use(RequireAdmin())
	}
	adm.GET("/stats", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "yes"})
	})
	return e
}

func get(e *echo.Echo, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestWithAuth_SetsContext(t *testing.T) {
	v := &verifierStub{claims: &identity.Claims{UserID: "u1", Role: "user"}}
	e := authEcho(v, false)

	rec := get(e, "/api/me", "Bearer some-token")
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"user_id":"u1"`) || !strings.Contains(body, `"role":"user"`) {
		t.Fatalf("context not propagated: %s", body)
	}
}

func TestWithAuth_MissingHeader(t *testing.T) {
	e := authEcho(&verifierStub{claims: &identity.Claims{UserID: "u1"}}, false)
	if rec := get(e, "/api/me", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing header => want 401, got %d", rec.Code)
	}
	if rec := get(e, "/api/me", "Basic abc"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("non-bearer => want 401, got %d", rec.Code)
	}
}

func TestWithAuth_InvalidToken(t *testing.T) {
	e := authEcho(&verifierStub{err: identity.ErrUnauthorized}, false)
	if rec := get(e, "/api/me", "Bearer bad"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("invalid token => want 401, got %d", rec.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	user := &verifierStub{claims: &identity.Claims{UserID: "u1", Role: "user"}}
	admin := &verifierStub{claims: &identity.Claims{UserID: "a1", Role: "admin"}}

	if rec := get(authEcho(user, true), "/api/admin/stats", "Bearer t"); rec.Code != http.StatusForbidden {
		t.Fatalf("user on admin route => want 403, got %d", rec.Code)
	}
	if rec := get(authEcho(admin, true), "/api/admin/stats", "Bearer t"); rec.Code != http.StatusOK {
		t.Fatalf("admin on admin route => want 200, got %d", rec.Code)
	}
}
