package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Prokope45/Praestara/internal/generation"
	"github.com/Prokope45/Praestara/internal/reflection"
	"github.com/Prokope45/Praestara/internal/repository"
	"github.com/Prokope45/Praestara/internal/service"
	"github.com/Prokope45/Praestara/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteResponseRepo(database)
	engine := reflection.NewEngine(generation.NewClient(generation.DefaultConfig(), generation.NoopObserver{}))
	h := NewHandler(service.NewCheckinService(repo, engine), service.NewOnboardingService(repo))
	return NewRouter(h, rate.Limit(100), 100)
}

func postJSON(t *testing.T, router http.Handler, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateCheckin(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/checkins", map[string]string{
		"type": "morning",
		"text": "Plan: deep work and a walk.",
	}, nil)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["checkin_id"])
	assert.Contains(t, resp["reply"], "Plan: deep work and a walk")
	assert.Equal(t, "deterministic", resp["reply_source"])
	assert.Nil(t, resp["alignment_score"])
}

func TestCreateCheckin_EveningScoredAfterOnboarding(t *testing.T) {
	router := newTestRouter(t)
	owner := map[string]string{"X-Praestara-Owner": "user-a"}

	onb := postJSON(t, router, "/api/onboarding", map[string]any{
		"payload": testutil.OnboardingPayload(testutil.DomainEntry("Family", 9)),
	}, owner)
	require.Equal(t, http.StatusCreated, onb.Code)

	rec := postJSON(t, router, "/api/checkins", map[string]string{
		"type": "evening",
		"text": "Family dinner tonight.",
	}, owner)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(53), resp["alignment_score"])
}

func TestCreateCheckin_Rejections(t *testing.T) {
	router := newTestRouter(t)

	badType := postJSON(t, router, "/api/checkins", map[string]string{
		"type": "midday", "text": "nap",
	}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, badType.Code)

	noText := postJSON(t, router, "/api/checkins", map[string]string{
		"type": "morning",
	}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, noText.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/checkins", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCheckins(t *testing.T) {
	router := newTestRouter(t)

	for _, text := range []string{"first recap", "second recap"} {
		rec := postJSON(t, router, "/api/checkins", map[string]string{
			"type": "evening", "text": text,
		}, nil)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/checkins?type=evening", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(2), resp["count"])
}

func TestGetOnboarding_NotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/onboarding", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOnboarding_RequiresPayload(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/onboarding", map[string]any{}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestOwnersAreIsolated(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/onboarding", map[string]any{
		"payload": testutil.OnboardingPayload(testutil.DomainEntry("Health", 9)),
	}, map[string]string{"X-Praestara-Owner": "user-a"})
	require.Equal(t, http.StatusCreated, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/onboarding", nil)
	req.Header.Set("X-Praestara-Owner", "user-b")
	got := httptest.NewRecorder()
	router.ServeHTTP(got, req)
	assert.Equal(t, http.StatusNotFound, got.Code)
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteResponseRepo(database)
	engine := reflection.NewEngine(generation.NewClient(generation.DefaultConfig(), generation.NoopObserver{}))
	h := NewHandler(service.NewCheckinService(repo, engine), service.NewOnboardingService(repo))
	router := NewRouter(h, rate.Limit(0.001), 1)

	first := httptest.NewRequest(http.MethodGet, "/api/checkins", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, first)
	require.Equal(t, http.StatusOK, rec.Code)

	second := httptest.NewRequest(http.MethodGet, "/api/checkins", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, second)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
