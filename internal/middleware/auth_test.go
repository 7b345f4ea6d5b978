package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/aegisx/platform/internal/domain"
)

type staticVerifier struct {
	identity Identity
	err      error
}

func (v *staticVerifier) Verify(string) (Identity, error) {
	return v.identity, v.err
}

func newAuthRouter(verifier TokenVerifier, cfg AuthConfig, required string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Auth(verifier, cfg))

	handlers := []gin.HandlerFunc{}
	if required != "" {
		handlers = append(handlers, RequirePermission(required))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"role":    RoleFromContext(c),
			"user_id": UserIDFromContext(c),
		})
	})
	r.GET("/probe", handlers...)
	return r
}

func probe(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_DisabledGrantsAdmin(t *testing.T) {
	r := newAuthRouter(nil, AuthConfig{Enabled: false}, "users:delete")

	w := probe(r, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d; want 200 with auth disabled", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["role"] != domain.RoleAdmin {
		t.Errorf("role=%q; want admin", body["role"])
	}
}

func TestAuth_NoTokenIsPublic(t *testing.T) {
	r := newAuthRouter(&staticVerifier{}, AuthConfig{Enabled: true}, "")

	w := probe(r, "")
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["role"] != domain.RolePublic {
		t.Errorf("role=%q; want public", body["role"])
	}
}

func TestAuth_ValidTokenSetsIdentity(t *testing.T) {
	v := &staticVerifier{identity: Identity{UserID: "42", Role: domain.RoleUser}}
	r := newAuthRouter(v, AuthConfig{Enabled: true}, "")

	w := probe(r, "sometoken")
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["role"] != domain.RoleUser || body["user_id"] != "42" {
		t.Errorf("body=%v; want user/42", body)
	}
}

func TestAuth_InvalidTokenRejected(t *testing.T) {
	v := &staticVerifier{err: errors.New("expired")}
	r := newAuthRouter(v, AuthConfig{Enabled: true}, "")

	w := probe(r, "badtoken")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d; want 401 for a token that fails verification", w.Code)
	}

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Error.Code != domain.CodeUnauthorized {
		t.Errorf("code=%q; want UNAUTHORIZED", resp.Error.Code)
	}
}

func TestAuth_InvalidTokenOnPublicPathIgnored(t *testing.T) {
	v := &staticVerifier{err: errors.New("expired")}
	r := newAuthRouter(v, AuthConfig{
		Enabled:     true,
		PublicPaths: []string{"/probe"},
	}, "")

	w := probe(r, "staletoken")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d; a stale token must not lock the caller out of public paths", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["role"] != domain.RolePublic {
		t.Errorf("role=%q; want public", body["role"])
	}
}

func TestAuth_ValidTokenOnPublicPathHonored(t *testing.T) {
	v := &staticVerifier{identity: Identity{UserID: "9", Role: domain.RoleUser}}
	r := newAuthRouter(v, AuthConfig{
		Enabled:     true,
		PublicPaths: []string{"/probe"},
	}, "")

	w := probe(r, "goodtoken")
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["role"] != domain.RoleUser || body["user_id"] != "9" {
		t.Errorf("body=%v; want user/9", body)
	}
}

func TestRequirePermission_Unauthenticated401(t *testing.T) {
	r := newAuthRouter(&staticVerifier{}, AuthConfig{Enabled: true}, "companies:create")

	w := probe(r, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d; want 401", w.Code)
	}

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Error.Code != domain.CodeUnauthorized {
		t.Errorf("code=%q; want UNAUTHORIZED", resp.Error.Code)
	}
}

func TestRequirePermission_AuthenticatedWithoutPermission403(t *testing.T) {
	v := &staticVerifier{identity: Identity{UserID: "7", Role: domain.RoleUser}}
	r := newAuthRouter(v, AuthConfig{Enabled: true}, "users:delete")

	w := probe(r, "token")
	if w.Code != http.StatusForbidden {
		t.Fatalf("status=%d; want 403", w.Code)
	}

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Error.Code != domain.CodeForbidden {
		t.Errorf("code=%q; want FORBIDDEN", resp.Error.Code)
	}
}

func TestRequirePermission_Granted(t *testing.T) {
	v := &staticVerifier{identity: Identity{UserID: "7", Role: domain.RoleUser}}
	r := newAuthRouter(v, AuthConfig{Enabled: true}, "purchase-orders:create")

	w := probe(r, "token")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d; want 200", w.Code)
	}
}

func TestIsPublicPath(t *testing.T) {
	cfg := AuthConfig{PublicPaths: []string{"/api/v1/auth/login"}}
	if !IsPublicPath(cfg, "/api/v1/auth/login") {
		t.Error("configured path should be public")
	}
	if IsPublicPath(cfg, "/api/v1/users") {
		t.Error("unlisted path must not be public")
	}
}

func TestBearerToken_Parsing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := map[string]string{
		"Bearer abc":  "abc",
		"bearer abc":  "abc",
		"BEARER abc":  "abc",
		"Basic xyz":   "",
		"Bearer":      "",
		"":            "",
		"Bearer  a  ": "a",
	}
	for header, want := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			c.Request.Header.Set("Authorization", header)
		}
		if got := bearerToken(c); got != want {
			t.Errorf("bearerToken(%q)=%q; want %q", header, got, want)
		}
	}
}
