package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func protectedEngine(kind Kind) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Require(kind, testSecret), func(c *gin.Context) {
		p, _ := FromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": p.ID})
	})
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAllowsMatchingKind(t *testing.T) {
	token, err := NewToken(testSecret, Principal{Kind: KindUser, ID: "u1"}, time.Hour)
	if err != nil {
		t.Fatalf("new token: %v", err)
	}

	w := doRequest(protectedEngine(KindUser), token)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}
}

func TestRequireRejectsMissingToken(t *testing.T) {
	w := doRequest(protectedEngine(KindUser), "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestRequireRejectsCrossKind(t *testing.T) {
	token, err := NewToken(testSecret, Principal{Kind: KindUser, ID: "u1"}, time.Hour)
	if err != nil {
		t.Fatalf("new token: %v", err)
	}

	// A user token must not authenticate against an admin route.
	w := doRequest(protectedEngine(KindAdmin), token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestRequireRejectsExpired(t *testing.T) {
	token, err := NewToken(testSecret, Principal{Kind: KindUser, ID: "u1"}, -time.Minute)
	if err != nil {
		t.Fatalf("new token: %v", err)
	}

	w := doRequest(protectedEngine(KindUser), token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

type fakeRoles struct {
	roles map[string]string
	err   error
}

func (f *fakeRoles) Role(_ context.Context, id string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.roles[id], nil
}

func roleEngine(users RoleChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin-only",
		Require(KindUser, testSecret),
		RequireAdminRole(users),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
	return r
}

func TestRequireAdminRoleAllowsAdmin(t *testing.T) {
	token, _ := NewToken(testSecret, Principal{Kind: KindUser, ID: "u1"}, time.Hour)
	users := &fakeRoles{roles: map[string]string{"u1": "admin"}}

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	roleEngine(users).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestRequireAdminRoleForbidsUser(t *testing.T) {
	token, _ := NewToken(testSecret, Principal{Kind: KindUser, ID: "u2"}, time.Hour)
	users := &fakeRoles{roles: map[string]string{"u2": "user"}}

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	roleEngine(users).ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestRequireAdminRoleLookupError(t *testing.T) {
	token, _ := NewToken(testSecret, Principal{Kind: KindUser, ID: "u3"}, time.Hour)
	users := &fakeRoles{err: errors.New("store down")}

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	roleEngine(users).ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}
