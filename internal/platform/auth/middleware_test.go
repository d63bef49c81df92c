package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestRequireSessionMissingHeader(t *testing.T) {
	svc, _ := newTestAuth(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := RequireSession(svc)(next)(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestRequireSessionBadFormat(t *testing.T) {
	svc, _ := newTestAuth(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := RequireSession(svc)(next)(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestRequireSessionValidToken(t *testing.T) {
	svc, _ := newTestAuth(t)
	sess, err := svc.SignUp(context.Background(), "X", "a@b.com", "longenough")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+sess.Token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotID, gotEmail string
	next := func(c echo.Context) error {
		gotID = AccountIDFromContext(c.Request().Context())
		gotEmail = AccountEmailFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	}
	if err := RequireSession(svc)(next)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != sess.Account.ID.String() {
		t.Errorf("expected account id on context, got %q", gotID)
	}
	if gotEmail != "a@b.com" {
		t.Errorf("expected account email on context, got %q", gotEmail)
	}
}

func TestRequireSessionRevokedToken(t *testing.T) {
	svc, _ := newTestAuth(t)
	sess, err := svc.SignUp(context.Background(), "X", "a@b.com", "longenough")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svc.SignOut(sess.Token)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+sess.Token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	merr := RequireSession(svc)(next)(c)
	he, ok := merr.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", merr)
	}
}

func TestRevocationCleanupDropsExpired(t *testing.T) {
	l := NewRevocationList()
	defer l.Close()

	l.Revoke("expired", "acct", time.Now().Add(-time.Minute))
	l.Revoke("live", "acct", time.Now().Add(time.Hour))
	l.cleanup()

	if l.IsRevoked("expired") {
		t.Error("expected expired entry dropped")
	}
	if !l.IsRevoked("live") {
		t.Error("expected live entry kept")
	}
}
