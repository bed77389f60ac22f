package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"prestige-backend/models"
	"prestige-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func init() {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret-key-for-unit-tests")
}

type fakeUsers map[uuid.UUID]*models.User

func (f fakeUsers) FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, errors.New("record not found")
}

func newUser(admin bool) *models.User {
	return &models.User{ID: uuid.New(), Username: "u", Email: "u@test.com", IsAdmin: admin}
}

func setupTestRouter(users fakeUsers) (*gin.Engine, *Sessions) {
	sessions := NewSessions(users, time.Hour, 30*24*time.Hour, false)

	r := gin.New()
	r.Use(sessions.Middleware())
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"identity": CurrentIdentity(c), "flashes": Flashes(c)})
	})
	r.GET("/profile", LoginRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CurrentIdentity(c).UserID})
	})
	r.POST("/api/cart/add", APILoginRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "added"})
	})
	r.GET("/admin", AdminRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "admin access granted"})
	})
	r.POST("/login/:id", func(c *gin.Context) {
		id := uuid.MustParse(c.Param("id"))
		if err := sessions.Login(c, users[id], c.Query("remember") == "1"); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	})
	return r, sessions
}

func tokenFor(t *testing.T, id uuid.UUID) string {
	t.Helper()
	token, err := utils.GenerateSessionToken(id, "u@test.com", false, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func TestSessionCookieResolvesIdentity(t *testing.T) {
	user := newUser(false)
	router, _ := setupTestRouter(fakeUsers{user.ID: user})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/profile", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tokenFor(t, user.ID)})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), user.ID.String()) {
		t.Errorf("expected user id in response, got %s", w.Body.String())
	}
}

func TestBearerHeaderResolvesIdentity(t *testing.T) {
	user := newUser(false)
	router, _ := setupTestRouter(fakeUsers{user.ID: user})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/cart/add", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, user.ID))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestDeletedUserIsAnonymous(t *testing.T) {
	router, _ := setupTestRouter(fakeUsers{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/cart/add", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tokenFor(t, uuid.New())})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for token of missing user, got %d", w.Code)
	}
}

func TestTamperedTokenIsAnonymous(t *testing.T) {
	user := newUser(false)
	router, _ := setupTestRouter(fakeUsers{user.ID: user})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/cart/add", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tokenFor(t, user.ID) + "x"})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for tampered token, got %d", w.Code)
	}
}

func TestAPILoginRequiredBody(t *testing.T) {
	router, _ := setupTestRouter(fakeUsers{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/api/cart/add", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "error" || body["message"] != "Login required" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestLoginRequiredRedirectsWithNext(t *testing.T) {
	router, _ := setupTestRouter(fakeUsers{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/profile", nil))

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login?next=%2Fprofile" {
		t.Errorf("expected redirect to login with next, got %s", loc)
	}
}

func TestAdminRequired(t *testing.T) {
	admin := newUser(true)
	customer := newUser(false)
	router, _ := setupTestRouter(fakeUsers{admin.ID: admin, customer.ID: customer})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tokenFor(t, admin.ID)})
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected admin to pass, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tokenFor(t, customer.ID)})
	router.ServeHTTP(w, req)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/" {
		t.Fatalf("expected customer redirected home, got %d %s", w.Code, w.Header().Get("Location"))
	}
	if !strings.Contains(w.Header().Get("Set-Cookie"), "flash=") {
		t.Error("expected a flash cookie with the privilege warning")
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))
	if w.Code != http.StatusFound || !strings.HasPrefix(w.Header().Get("Location"), "/login") {
		t.Fatalf("expected anonymous visitor sent to login, got %d %s", w.Code, w.Header().Get("Location"))
	}
}

func TestLoginSetsCookie(t *testing.T) {
	user := newUser(false)
	router, _ := setupTestRouter(fakeUsers{user.ID: user})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/login/"+user.ID.String(), nil))
	cookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, SessionCookie+"=") || !strings.Contains(cookie, "HttpOnly") {
		t.Errorf("expected HttpOnly session cookie, got %s", cookie)
	}
	if strings.Contains(cookie, "Max-Age") {
		t.Errorf("expected browser-session cookie without Max-Age, got %s", cookie)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/login/"+user.ID.String()+"?remember=1", nil))
	if cookie := w.Header().Get("Set-Cookie"); !strings.Contains(cookie, "Max-Age=2592000") {
		t.Errorf("expected persistent cookie for remember, got %s", cookie)
	}
}

func TestFlashRoundTrip(t *testing.T) {
	customer := newUser(false)
	router, _ := setupTestRouter(fakeUsers{customer.ID: customer})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tokenFor(t, customer.ID)})
	router.ServeHTTP(w, req)

	var flash *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "flash" {
			flash = c
		}
	}
	if flash == nil {
		t.Fatal("expected flash cookie")
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/", nil)
	req.AddCookie(flash)
	router.ServeHTTP(w, req)

	var body struct {
		Flashes []Flash `json:"flashes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Flashes) != 1 || body.Flashes[0].Message != "You need administrator privileges to access this page." {
		t.Errorf("unexpected flashes: %+v", body.Flashes)
	}
	if body.Flashes[0].Category != FlashDanger {
		t.Errorf("expected danger category, got %s", body.Flashes[0].Category)
	}
}

func TestSafeNext(t *testing.T) {
	tests := map[string]string{
		"":                     "/",
		"/cars":                "/cars",
		"//evil.example":       "/",
		"https://evil.example": "/",
		"/\\evil.example":      "/",
	}
	for next, expected := range tests {
		if got := SafeNext(next, "/"); got != expected {
			t.Errorf("SafeNext(%q) = %q, expected %q", next, got, expected)
		}
	}
}

func TestIdentityPredicates(t *testing.T) {
	var anon Identity
	if anon.IsAuthenticated() || anon.IsAdminUser() || anon.UserIDPtr() != nil {
		t.Error("zero identity must be anonymous")
	}
	admin := Identity{UserID: uuid.New(), IsAdmin: true}
	if !admin.IsAdminUser() {
		t.Error("expected admin identity")
	}
	if *admin.UserIDPtr() != admin.UserID {
		t.Error("expected UserIDPtr to point at the user id")
	}
}
