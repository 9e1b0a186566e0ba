package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpath/careerpath-go/internal/crypto"
	"github.com/careerpath/careerpath-go/internal/model"
	"github.com/careerpath/careerpath-go/internal/repository"
	"github.com/careerpath/careerpath-go/internal/service"
)

const testSecret = "handler-test-secret"

type fakeCounselor struct {
	mu    sync.Mutex
	reply string
	err   error
}

func (f *fakeCounselor) Analyze(context.Context, model.Profile) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reply, f.err
}

func (f *fakeCounselor) Converse(context.Context, string, *model.Profile, string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reply, f.err
}

type testServer struct {
	handler http.Handler
	store   *repository.MemoryStore
	llm     *fakeCounselor
}

func newTestServer() *testServer {
	store := repository.NewMemoryStore()
	llm := &fakeCounselor{reply: "Consider computer science."}
	profiles := service.NewProfileService(store)
	svcs := Services{
		Auth:       service.NewAuthService(store, testSecret, 24*time.Hour),
		Profile:    profiles,
		Assessment: service.NewAssessmentService(profiles, llm),
		Chat:       service.NewChatService(store, store, llm),
	}
	return &testServer{
		handler: NewRouter(svcs, testSecret, []string{"*"}),
		store:   store,
		llm:     llm,
	}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) register(t *testing.T, email string) model.AuthResponse {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": email, "name": "Test User", "password": "TestPass123!",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp model.AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body["detail"]
}

func TestRoot(t *testing.T) {
	s := newTestServer()

	rec := s.do(t, http.MethodGet, "/api/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "AI Career Guidance API")

	rec = s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRegisterLoginFlow(t *testing.T) {
	s := newTestServer()

	reg := s.register(t, "a@x.com")
	assert.Equal(t, "User registered successfully", reg.Message)
	assert.NotEmpty(t, reg.AccessToken)
	assert.Equal(t, "a@x.com", reg.User.Email)
	assert.False(t, reg.User.ProfileCompleted)

	rec := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "a@x.com", "name": "Someone Else", "password": "different",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "email already registered", decodeDetail(t, rec))

	rec = s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "a@x.com", "password": "TestPass123!",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token"`)
	assert.NotContains(t, rec.Body.String(), "password")

	rec = s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "a@x.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid email or password", decodeDetail(t, rec))
}

func TestRegister_BadInput(t *testing.T) {
	s := newTestServer()

	rec := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "not-an-email", "name": "X", "password": "p",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeDetail(t, rec), "email")

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{"))
	rec = httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request body", decodeDetail(t, rec))

	big := `{"email":"` + strings.Repeat("a", 2<<20) + `"}`
	req = httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(big))
	rec = httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestProfileFlow(t *testing.T) {
	s := newTestServer()
	reg := s.register(t, "a@x.com")

	rec := s.do(t, http.MethodGet, "/api/profile", reg.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Profile not found", decodeDetail(t, rec))

	rec = s.do(t, http.MethodPost, "/api/profile", reg.AccessToken, map[string]any{
		"user_id":        "someone-else",
		"academic_level": "high_school",
		"subjects":       []string{"Physics"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"message":"Profile created successfully"}`, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/profile", reg.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var profile model.Profile
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&profile))
	assert.Equal(t, reg.User.ID, profile.UserID)
	assert.Equal(t, []string{"Physics"}, profile.Subjects)

	rec = s.do(t, http.MethodGet, "/api/auth/me", reg.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var me model.UserResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&me))
	assert.True(t, me.ProfileCompleted)

	rec = s.do(t, http.MethodPost, "/api/profile", reg.AccessToken, map[string]any{"subjects": []string{"Physics"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProtectedRoutes_Unauthorized(t *testing.T) {
	s := newTestServer()
	reg := s.register(t, "a@x.com")

	expired, err := crypto.GenerateToken(reg.User.ID, testSecret, -time.Minute)
	require.NoError(t, err)
	orphan, err := crypto.GenerateToken("no-such-user", testSecret, time.Hour)
	require.NoError(t, err)

	paths := []struct{ method, path string }{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPost, "/api/profile"},
		{http.MethodGet, "/api/profile"},
		{http.MethodPost, "/api/assessment/analyze"},
		{http.MethodPost, "/api/chat"},
		{http.MethodGet, "/api/chat/history"},
	}
	tokens := []struct{ token, detail string }{
		{"", "Authorization token required"},
		{"garbage", "Invalid token"},
		{expired, "Token expired"},
		{orphan, "User not found"},
	}

	for _, p := range paths {
		for _, tk := range tokens {
			rec := s.do(t, p.method, p.path, tk.token, nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", p.method, p.path)
			assert.Equal(t, tk.detail, decodeDetail(t, rec), "%s %s", p.method, p.path)
		}
	}
}

func TestAnalyze(t *testing.T) {
	s := newTestServer()
	reg := s.register(t, "a@x.com")

	rec := s.do(t, http.MethodPost, "/api/assessment/analyze", reg.AccessToken, map[string]any{
		"academic_level": "high_school",
		"interests":      []string{"Technology"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp model.AnalysisResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Consider computer science.", resp.Analysis)
	assert.True(t, resp.RecommendationsGenerated)
	assert.Equal(t, reg.User.ID, resp.UserID)

	s.llm.err = errors.New("provider unavailable")
	rec = s.do(t, http.MethodPost, "/api/assessment/analyze", reg.AccessToken, map[string]any{
		"academic_level": "postgraduate",
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "analysis failed: provider unavailable", decodeDetail(t, rec))

	p, err := s.store.GetByUserID(context.Background(), reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "high_school", p.AcademicLevel)
}

func TestChat(t *testing.T) {
	s := newTestServer()
	reg := s.register(t, "a@x.com")

	rec := s.do(t, http.MethodPost, "/api/chat", reg.AccessToken, map[string]string{"message": "Which stream suits me?"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp model.ChatResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Consider computer science.", resp.Response)
	assert.False(t, resp.Timestamp.IsZero())

	s.llm.err = errors.New("quota exceeded")
	rec = s.do(t, http.MethodPost, "/api/chat", reg.AccessToken, map[string]string{"message": "And colleges?"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "chat failed: quota exceeded", decodeDetail(t, rec))

	rec = s.do(t, http.MethodPost, "/api/chat", reg.AccessToken, map[string]string{"message": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/chat/history", reg.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var history []model.ChatMessage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&history))
	require.Len(t, history, 1)
	assert.Equal(t, "Which stream suits me?", history[0].Message)
}

func TestChatHistory_EmptyIsArray(t *testing.T) {
	s := newTestServer()
	reg := s.register(t, "a@x.com")

	rec := s.do(t, http.MethodGet, "/api/chat/history", reg.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCareerDomains(t *testing.T) {
	s := newTestServer()

	rec := s.do(t, http.MethodGet, "/api/careers/domains", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var domains map[string]model.CareerDomain
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&domains))
	assert.Len(t, domains, 6)
	assert.Equal(t, "Engineering & Technology", domains["engineering"].Name)
	assert.Contains(t, domains["engineering"].Fields, "Computer Science")
}
