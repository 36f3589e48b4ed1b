package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"learn-loop/internal/catalog"
	"learn-loop/internal/delivery/http/handler"
	"learn-loop/internal/delivery/http/middleware"
	"learn-loop/internal/delivery/http/routes"
	"learn-loop/internal/infrastructure/cache"
	"learn-loop/internal/pkg/jwt"
	"learn-loop/internal/repository/memory"
	ucauth "learn-loop/internal/usecase/auth"
	uccareer "learn-loop/internal/usecase/career"
	ucsubmission "learn-loop/internal/usecase/submission"
	ucuser "learn-loop/internal/usecase/user"
	"learn-loop/internal/ws"
)

type careerItem struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// TestIntegration_LearningFlow drives the whole loop over the in-memory
// driver: login, preferences, recommendations, career selection, roadmap,
// project submission through validation, admin listing, account deletion.
func TestIntegration_LearningFlow(t *testing.T) {
	app, cleanup := newTestApp(t)
	defer cleanup()

	userTok := login(t, app, "alice", "secret-pw")
	adminTok := login(t, app, "admin", "admin-pw")

	// Unauthenticated and malformed tokens take distinct failure paths.
	if code := statusOf(t, app, get("/api/user/profile", "")); code != http.StatusUnauthorized {
		t.Fatalf("profile without token: expected 401, got %d", code)
	}
	if code := statusOf(t, app, get("/api/user/profile", "not-a-jwt")); code != http.StatusForbidden {
		t.Fatalf("profile with garbage token: expected 403, got %d", code)
	}

	// Recommendations before preferences are rejected.
	if code := statusOf(t, app, get("/api/career-recommendations", userTok)); code != http.StatusBadRequest {
		t.Fatalf("recommendations before preferences: expected 400, got %d", code)
	}

	postJSON(t, app, "/api/user/preferences", userTok, map[string]any{
		"interests": []string{"data", "ml"},
		"language":  "python",
	}, http.StatusOK)

	careers := callRecommendations(t, app, userTok)
	if len(careers) == 0 {
		t.Fatalf("recommendations: expected non-empty list")
	}
	assertNoDuplicateCareers(t, careers)

	chosen := careers[0]
	postJSON(t, app, "/api/user/career", userTok, map[string]any{"career": chosen}, http.StatusOK)

	roadmap := getRoadmap(t, app, userTok)
	if roadmap.Career == nil {
		t.Fatalf("roadmap: expected selected career")
	}
	if roadmap.Career.Title != chosen.Title {
		t.Fatalf("roadmap: expected career %q, got %q", chosen.Title, roadmap.Career.Title)
	}
	if len(roadmap.Skills) == 0 {
		t.Fatalf("roadmap: expected skill entries")
	}

	// Submission enters pending and the validation window flips it.
	subID := submitProject(t, app, userTok, "sql", "https://github.com/alice/sql-project")
	if subID == "" {
		t.Fatalf("submit: empty submissionId")
	}
	if submitted := submissionStatus(t, app, userTok, "sql"); submitted {
		t.Fatalf("status: expected submitted=false immediately after submit")
	}
	waitForValidated(t, app, userTok, "sql")

	// The listing is role-gated.
	if code := statusOf(t, app, get("/api/admin/submissions", userTok)); code != http.StatusForbidden {
		t.Fatalf("admin listing as user: expected 403, got %d", code)
	}
	subs := adminListSubmissions(t, app, adminTok)
	if !containsSubmission(subs, subID) {
		t.Fatalf("admin listing: expected submission %s to appear", subID)
	}

	// Deletion cascades: profile gone, submissions gone from the listing.
	req := httptest.NewRequest("DELETE", "/api/user/account", nil)
	req.Header.Set("Authorization", "Bearer "+userTok)
	if code := statusOf(t, app, req); code != http.StatusOK {
		t.Fatalf("delete account: expected 200, got %d", code)
	}
	if code := statusOf(t, app, get("/api/user/profile", userTok)); code != http.StatusNotFound {
		t.Fatalf("profile after deletion: expected 404, got %d", code)
	}
	subs = adminListSubmissions(t, app, adminTok)
	if containsSubmission(subs, subID) {
		t.Fatalf("admin listing after deletion: submission %s still present", subID)
	}
}

func TestIntegration_LoginRejectsWrongPassword(t *testing.T) {
	app, cleanup := newTestApp(t)
	defer cleanup()

	login(t, app, "bob", "first-pw")

	body, _ := json.Marshal(map[string]string{"userId": "bob", "password": "other-pw"})
	req := httptest.NewRequest("POST", "/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if code := statusOf(t, app, req); code != http.StatusUnauthorized {
		t.Fatalf("login with wrong password: expected 401, got %d", code)
	}
}

func newTestApp(t *testing.T) (*fiber.App, func()) {
	t.Helper()

	logger := log.New(io.Discard, "", 0)

	users := memory.NewUserStore()
	subs := memory.NewSubmissionStore()

	hub := ws.NewHub(logger)
	go hub.Run()

	submissions := ucsubmission.NewService(users, subs, hub, logger, 10*time.Millisecond, 30*time.Millisecond)
	careerSvc := uccareer.NewService(users, (*cache.Redis)(nil), time.Minute)
	userSvc := ucuser.NewService(users, subs, submissions, careerSvc)

	tokens := jwt.NewHMACService("integration-test-secret", time.Hour)
	authSvc := ucauth.NewService(users, tokens, []string{"admin"})
	authMw := middleware.NewAuthMiddleware(tokens)

	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())

	routes.NewRegistry(
		handler.NewAuthHandler(authSvc),
		handler.NewUserHandler(userSvc),
		handler.NewCareerHandler(careerSvc),
		handler.NewSubmissionHandler(submissions),
		authMw,
		ws.NewHandler(hub, logger),
	).Register(app)

	return app, submissions.Close
}

func login(t *testing.T, app *fiber.App, userID, password string) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"userId": userID, "password": password})
	req := httptest.NewRequest("POST", "/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("login request error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d", userID, resp.StatusCode)
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("login decode error: %v", err)
	}
	if out.Token == "" {
		t.Fatalf("login %s: missing token", userID)
	}
	return out.Token
}

func get(path, token string) *http.Request {
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func statusOf(t *testing.T, app *fiber.App, req *http.Request) int {
	t.Helper()

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: request error: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func postJSON(t *testing.T, app *fiber.App, path, token string, payload any, wantStatus int) {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload for %s: %v", path, err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("POST %s: request error: %v", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("POST %s: expected %d, got %d", path, wantStatus, resp.StatusCode)
	}
}

func callRecommendations(t *testing.T, app *fiber.App, token string) []careerItem {
	t.Helper()

	resp, err := app.Test(get("/api/career-recommendations", token))
	if err != nil {
		t.Fatalf("recommendations request error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("recommendations: expected 200, got %d", resp.StatusCode)
	}

	var out struct {
		Careers []careerItem `json:"careers"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("recommendations decode error: %v", err)
	}
	return out.Careers
}

func assertNoDuplicateCareers(t *testing.T, items []careerItem) {
	t.Helper()

	seen := map[string]struct{}{}
	for _, it := range items {
		if _, ok := seen[it.Title]; ok {
			t.Fatalf("recommendations: duplicate career %q", it.Title)
		}
		seen[it.Title] = struct{}{}
	}
}

func getRoadmap(t *testing.T, app *fiber.App, token string) ucuser.Roadmap {
	t.Helper()

	resp, err := app.Test(get("/api/roadmap", token))
	if err != nil {
		t.Fatalf("roadmap request error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("roadmap: expected 200, got %d", resp.StatusCode)
	}

	var rm ucuser.Roadmap
	if err := json.NewDecoder(resp.Body).Decode(&rm); err != nil {
		t.Fatalf("roadmap decode error: %v", err)
	}
	return rm
}

func submitProject(t *testing.T, app *fiber.App, token, skill, link string) string {
	t.Helper()

	if !catalog.IsSkill(skill) {
		t.Fatalf("test bug: %q is not a known skill", skill)
	}

	body, _ := json.Marshal(map[string]string{"skill": skill, "link": link})
	req := httptest.NewRequest("POST", "/api/submit-project", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("submit request error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submit: expected 200, got %d", resp.StatusCode)
	}

	var out struct {
		Message      string `json:"message"`
		SubmissionID string `json:"submissionId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("submit decode error: %v", err)
	}
	return out.SubmissionID
}

func submissionStatus(t *testing.T, app *fiber.App, token, skill string) bool {
	t.Helper()

	resp, err := app.Test(get("/api/submission-status/"+skill, token))
	if err != nil {
		t.Fatalf("status request error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: expected 200, got %d", resp.StatusCode)
	}

	var out struct {
		Submitted bool `json:"submitted"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("status decode error: %v", err)
	}
	return out.Submitted
}

func waitForValidated(t *testing.T, app *fiber.App, token, skill string) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if submissionStatus(t, app, token, skill) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("submission for %s never validated", skill)
}

type submissionItem struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Skill  string `json:"skill"`
	Status string `json:"status"`
}

func adminListSubmissions(t *testing.T, app *fiber.App, token string) []submissionItem {
	t.Helper()

	resp, err := app.Test(get("/api/admin/submissions", token))
	if err != nil {
		t.Fatalf("admin listing request error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin listing: expected 200, got %d", resp.StatusCode)
	}

	var out struct {
		Submissions []submissionItem `json:"submissions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("admin listing decode error: %v", err)
	}
	return out.Submissions
}

func containsSubmission(items []submissionItem, id string) bool {
	for _, it := range items {
		if it.ID == id {
			return true
		}
	}
	return false
}
