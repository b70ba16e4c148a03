package routes

import (
	"GrowthGo/config"
	"GrowthGo/utils"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

type testServer struct {
	t      *testing.T
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.InitJWT("test-secret", time.Hour)

	conf := config.Config{
		Environment:     "test",
		DBDriver:        "sqlite",
		DBPath:          filepath.Join(t.TempDir(), "growth.db"),
		SearchEngineURL: "https://example.com/s?q=",
	}
	db, err := config.OpenDB(conf)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := config.MigrateDB(db); err != nil {
		t.Fatalf("migrate db: %v", err)
	}

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		_ = config.CloseDB(db)
	})

	return &testServer{t: t, router: NewRouter(conf, db, client)}
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			s.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// expect 检查状态码并把响应体解码到 out
func (s *testServer) expect(rec *httptest.ResponseRecorder, status int, out interface{}) {
	s.t.Helper()
	if rec.Code != status {
		s.t.Fatalf("expected status %d, got %d: %s", status, rec.Code, rec.Body.String())
	}
	if out != nil {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			s.t.Fatalf("decode response: %v: %s", err, rec.Body.String())
		}
	}
}

// signup 注册并登录，返回令牌
func (s *testServer) signup(name string) string {
	s.t.Helper()
	email := name + "@example.com"
	s.expect(s.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": name, "email": email, "password": "secret123",
	}), http.StatusCreated, nil)

	var resp struct {
		Token string `json:"token"`
	}
	s.expect(s.do(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": "secret123",
	}), http.StatusOK, &resp)
	if resp.Token == "" {
		s.t.Fatal("empty token")
	}
	return resp.Token
}

type idResponse struct {
	ID uint `json:"id"`
}

func TestPing(t *testing.T) {
	s := newTestServer(t)
	s.expect(s.do(http.MethodGet, "/ping", "", nil), http.StatusOK, nil)
}

func TestAuthFlow(t *testing.T) {
	s := newTestServer(t)

	var created struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	s.expect(s.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "alice", "email": "alice@example.com", "password": "secret123",
	}), http.StatusCreated, &created)
	if created.ID == 0 || created.Username != "alice" {
		t.Fatalf("unexpected register response %+v", created)
	}

	s.expect(s.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "alice2", "email": "alice@example.com", "password": "secret123",
	}), http.StatusConflict, nil)
	s.expect(s.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "bob", "email": "not-an-email", "password": "secret123",
	}), http.StatusBadRequest, nil)
	s.expect(s.do(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "wrong-password",
	}), http.StatusUnauthorized, nil)

	s.expect(s.do(http.MethodGet, "/api/inspirations", "", nil), http.StatusUnauthorized, nil)
	s.expect(s.do(http.MethodGet, "/api/inspirations", "garbage", nil), http.StatusUnauthorized, nil)

	var login struct {
		Token string `json:"token"`
	}
	s.expect(s.do(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "secret123",
	}), http.StatusOK, &login)

	var me struct {
		User struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	s.expect(s.do(http.MethodGet, "/api/auth/me", login.Token, nil), http.StatusOK, &me)
	if me.User.ID != created.ID {
		t.Fatalf("me returned user %d, want %d", me.User.ID, created.ID)
	}

	var categories []struct {
		Name string `json:"name"`
	}
	s.expect(s.do(http.MethodGet, "/api/categories", login.Token, nil), http.StatusOK, &categories)
	if len(categories) != 5 {
		t.Fatalf("expected 5 default categories, got %d", len(categories))
	}

	s.expect(s.do(http.MethodPost, "/api/auth/logout", login.Token, nil), http.StatusOK, nil)
	s.expect(s.do(http.MethodGet, "/api/auth/me", login.Token, nil), http.StatusUnauthorized, nil)
}

func TestCRUDAndOwnership(t *testing.T) {
	s := newTestServer(t)
	alice := s.signup("alice")
	bob := s.signup("bob")

	var inspiration idResponse
	s.expect(s.do(http.MethodPost, "/api/inspirations", alice, map[string]string{
		"content": "Write about concurrency", "tags": "go,ideas",
	}), http.StatusCreated, &inspiration)

	path := fmt.Sprintf("/api/inspirations/%d", inspiration.ID)
	s.expect(s.do(http.MethodPut, path, bob, map[string]string{"content": "hijack"}), http.StatusNotFound, nil)
	s.expect(s.do(http.MethodDelete, path, bob, nil), http.StatusNotFound, nil)

	var updated struct {
		Content string `json:"content"`
		Tags    string `json:"tags"`
	}
	s.expect(s.do(http.MethodPut, path, alice, map[string]string{"content": "Write about channels"}), http.StatusOK, &updated)
	if updated.Content != "Write about channels" || updated.Tags != "" {
		t.Fatalf("expected full replacement, got %+v", updated)
	}

	var bobList []idResponse
	s.expect(s.do(http.MethodGet, "/api/inspirations", bob, nil), http.StatusOK, &bobList)
	if len(bobList) != 0 {
		t.Fatalf("bob should see no inspirations, got %d", len(bobList))
	}

	s.expect(s.do(http.MethodDelete, path, alice, nil), http.StatusOK, nil)
	s.expect(s.do(http.MethodDelete, path, alice, nil), http.StatusNotFound, nil)

	s.expect(s.do(http.MethodPut, "/api/inspirations/abc", alice, map[string]string{"content": "x"}), http.StatusBadRequest, nil)
	s.expect(s.do(http.MethodPost, "/api/knowledge", alice, map[string]string{"content": "no title"}), http.StatusBadRequest, nil)
	s.expect(s.do(http.MethodPost, "/api/goals", alice, map[string]interface{}{"title": "g", "progress": 150}), http.StatusBadRequest, nil)
	s.expect(s.do(http.MethodPost, "/api/tasks", alice, map[string]string{"title": "t", "status": "done"}), http.StatusBadRequest, nil)
}

func TestGoalTasks(t *testing.T) {
	s := newTestServer(t)
	alice := s.signup("alice")
	bob := s.signup("bob")

	var goal idResponse
	s.expect(s.do(http.MethodPost, "/api/goals", alice, map[string]interface{}{
		"title": "Ship v1", "type": "monthly", "target_date": "2026-12-31", "progress": 10,
	}), http.StatusCreated, &goal)

	var task struct {
		ID          uint       `json:"id"`
		GoalID      *uint      `json:"goal_id"`
		Status      string     `json:"status"`
		CompletedAt *time.Time `json:"completed_at"`
	}
	s.expect(s.do(http.MethodPost, "/api/tasks", alice, map[string]interface{}{
		"title": "Write docs", "goal_id": goal.ID, "priority": "high",
	}), http.StatusCreated, &task)
	if task.GoalID == nil || *task.GoalID != goal.ID || task.Status != "pending" {
		t.Fatalf("unexpected task %+v", task)
	}
	s.expect(s.do(http.MethodPost, "/api/tasks", alice, map[string]interface{}{"title": "Unrelated"}), http.StatusCreated, nil)

	s.expect(s.do(http.MethodPut, fmt.Sprintf("/api/tasks/%d", task.ID), alice, map[string]interface{}{
		"title": "Write docs", "goal_id": goal.ID, "status": "completed",
	}), http.StatusOK, &task)
	if task.CompletedAt == nil {
		t.Fatal("expected completed_at to be set")
	}

	var tasks []idResponse
	goalTasks := fmt.Sprintf("/api/goals/%d/tasks", goal.ID)
	s.expect(s.do(http.MethodGet, goalTasks, alice, nil), http.StatusOK, &tasks)
	if len(tasks) != 1 || tasks[0].ID != task.ID {
		t.Fatalf("expected only the linked task, got %+v", tasks)
	}
	s.expect(s.do(http.MethodGet, goalTasks, bob, nil), http.StatusNotFound, nil)
	s.expect(s.do(http.MethodPost, "/api/tasks", bob, map[string]interface{}{"title": "sneaky", "goal_id": goal.ID}), http.StatusBadRequest, nil)
}

func TestCategoryConflict(t *testing.T) {
	s := newTestServer(t)
	alice := s.signup("alice")
	bob := s.signup("bob")

	s.expect(s.do(http.MethodPost, "/api/categories", alice, map[string]string{"name": "Side projects"}), http.StatusCreated, nil)
	s.expect(s.do(http.MethodPost, "/api/categories", alice, map[string]string{"name": "Side projects"}), http.StatusConflict, nil)
	s.expect(s.do(http.MethodPost, "/api/categories", alice, map[string]string{"name": "其他"}), http.StatusConflict, nil)
	s.expect(s.do(http.MethodPost, "/api/categories", bob, map[string]string{"name": "Side projects"}), http.StatusCreated, nil)
}

func TestSearchAndStatisticsAreScoped(t *testing.T) {
	s := newTestServer(t)
	alice := s.signup("alice")
	bob := s.signup("bob")

	s.expect(s.do(http.MethodPost, "/api/knowledge", alice, map[string]string{
		"title": "Effective Go", "content": "interfaces", "category": "Programming",
	}), http.StatusCreated, nil)
	s.expect(s.do(http.MethodPost, "/api/tasks", alice, map[string]string{"title": "Read Go blog", "status": "completed"}), http.StatusCreated, nil)
	s.expect(s.do(http.MethodPost, "/api/tasks", alice, map[string]string{"title": "Plan trip"}), http.StatusCreated, nil)
	s.expect(s.do(http.MethodPost, "/api/tasks", bob, map[string]string{"title": "Go shopping", "status": "completed"}), http.StatusCreated, nil)

	var results []struct {
		Type string `json:"type"`
	}
	s.expect(s.do(http.MethodGet, "/api/search?q=GO", alice, nil), http.StatusOK, &results)
	if len(results) != 2 {
		t.Fatalf("expected 2 results for alice, got %+v", results)
	}

	var empty []interface{}
	s.expect(s.do(http.MethodGet, "/api/search", alice, nil), http.StatusOK, &empty)
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty array, got %v", empty)
	}

	var stats struct {
		Knowledge int64 `json:"knowledge"`
		Tasks     struct {
			Total      int64 `json:"total"`
			Completed  int64 `json:"completed"`
			Percentage int   `json:"percentage"`
		} `json:"tasks"`
	}
	s.expect(s.do(http.MethodGet, "/api/statistics", alice, nil), http.StatusOK, &stats)
	if stats.Knowledge != 1 || stats.Tasks.Total != 2 || stats.Tasks.Completed != 1 || stats.Tasks.Percentage != 50 {
		t.Fatalf("unexpected statistics %+v", stats)
	}

	var analysis struct {
		Suggestions     []string `json:"suggestions"`
		Recommendations []struct {
			URL string `json:"url"`
		} `json:"recommendations"`
	}
	s.expect(s.do(http.MethodGet, "/api/ai/analysis", alice, nil), http.StatusOK, &analysis)
	if len(analysis.Suggestions) == 0 || len(analysis.Recommendations) == 0 {
		t.Fatalf("expected suggestions and recommendations, got %+v", analysis)
	}
}
