package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/TheABX/runmvmtquiz-sub001/internal/config"
	"github.com/TheABX/runmvmtquiz-sub001/internal/db"
	"github.com/TheABX/runmvmtquiz-sub001/internal/logging"
	"github.com/TheABX/runmvmtquiz-sub001/internal/server/middleware"
	"github.com/TheABX/runmvmtquiz-sub001/internal/server/ratelimit"
	"github.com/TheABX/runmvmtquiz-sub001/internal/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// memStore is an in-memory Store for handler tests.
type memStore struct {
	mu   sync.Mutex
	subs map[string]db.Submission
	err  error
}

func newMemStore() *memStore {
	return &memStore{subs: make(map[string]db.Submission)}
}

func storeKey(userID uuid.UUID, quiz string) string {
	return userID.String() + "/" + quiz
}

func (m *memStore) UpsertSubmission(_ context.Context, userID uuid.UUID, quiz string, answers, result any) (*db.Submission, error) {
	if m.err != nil {
		return nil, m.err
	}
	a, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}
	r, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	sub := db.Submission{UserID: userID, Quiz: quiz, Answers: a, Result: r, CreatedAt: now, UpdatedAt: now}
	if prev, ok := m.subs[storeKey(userID, quiz)]; ok {
		sub.CreatedAt = prev.CreatedAt
	}
	m.subs[storeKey(userID, quiz)] = sub
	return &sub, nil
}

func (m *memStore) GetSubmission(_ context.Context, userID uuid.UUID, quiz string) (*db.Submission, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	sub, ok := m.subs[storeKey(userID, quiz)]
	if !ok {
		return nil, nil
	}
	return &sub, nil
}

func (m *memStore) ListSubmissions(_ context.Context, userID uuid.UUID) ([]db.Submission, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db.Submission
	for _, sub := range m.subs {
		if sub.UserID == userID {
			out = append(out, sub)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Quiz < out[j].Quiz })
	return out, nil
}

func (m *memStore) DeleteSubmissions(_ context.Context, userID uuid.UUID) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for key, sub := range m.subs {
		if sub.UserID == userID {
			delete(m.subs, key)
			n++
		}
	}
	return n, nil
}

type fakePrinter struct {
	html string
	err  error
}

func (p *fakePrinter) Print(_ context.Context, html string) ([]byte, error) {
	p.html = html
	if p.err != nil {
		return nil, p.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

func disabledLimiter() *ratelimit.Limiter {
	return ratelimit.NewLimiter(&ratelimit.Config{Enabled: false})
}

type testServer struct {
	*Server
	store   *memStore
	printer *fakePrinter
	handler http.Handler
}

func newTestServer(t *testing.T, withStore bool) *testServer {
	t.Helper()
	ts := &testServer{printer: &fakePrinter{}}
	opts := Options{
		Logger:  logging.Nop(),
		Printer: ts.printer,
		Limiter: disabledLimiter(),
	}
	if withStore {
		ts.store = newMemStore()
		opts.Store = ts.store
	}
	ts.Server = New(config.Builtin(), opts)
	ts.handler = ts.Handler()
	return ts
}

func (ts *testServer) do(t *testing.T, method, target string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

// resultAs decodes a ResultResponse whose Result has type T.
func resultAs[T any](t *testing.T, rec *httptest.ResponseRecorder) (ResultResponse, T) {
	t.Helper()
	var envelope struct {
		UserID string          `json:"user_id"`
		Saved  bool            `json:"saved"`
		Result json.RawMessage `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope), rec.Body.String())
	var result T
	require.NoError(t, json.Unmarshal(envelope.Result, &result))
	return ResultResponse{UserID: envelope.UserID, Saved: envelope.Saved}, result
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func datingBody(userID string, value float64) map[string]any {
	answers := make([]map[string]any, 0, 33)
	for id := 1; id <= 33; id++ {
		answers = append(answers, map[string]any{"question_id": id, "value": value})
	}
	body := map[string]any{"answers": answers}
	if userID != "" {
		body["user_id"] = userID
	}
	return body
}

func runningBody(userID string) map[string]any {
	body := map[string]any{
		"answers": []map[string]any{
			{"question_id": 1, "value": "intermediate"},
			{"question_id": 2, "value": 20},
			{"question_id": 3, "value": "10k"},
			{"question_id": 4, "value": "finish"},
			{"question_id": 5, "value": 4},
			{"question_id": 6, "value": 10},
			{"question_id": 7, "value": "none"},
			{"question_id": 8, "value": "never"},
			{"question_id": 9, "value": []string{"intervals"}},
		},
	}
	if userID != "" {
		body["user_id"] = userID
	}
	return body
}

func nutritionBody(userID string, withLoad bool) map[string]any {
	body := map[string]any{
		"nutrition": map[string]any{
			"sex":                "male",
			"age":                30,
			"weight_kg":          70,
			"height_cm":          175,
			"goal":               "maintain",
			"dietary_preference": "standard",
			"training_time":      "morning",
		},
	}
	if withLoad {
		body["training_load"] = map[string]any{
			"average_weekly_km":      26.2,
			"peak_weekly_km":         35,
			"training_days_per_week": 4,
		}
	}
	if userID != "" {
		body["user_id"] = userID
	}
	return body
}

func screeningBody(userID string, points int) map[string]any {
	body := map[string]any{
		"scores": []map[string]any{
			{"test_id": "deep_squat", "score": points},
			{"test_id": "hip_hinge", "score": points},
			{"test_id": "push_up_hold", "score": points},
			{"test_id": "single_leg_balance", "left": points, "right": points},
			{"test_id": "split_squat", "left": points, "right": points},
		},
	}
	if userID != "" {
		body["user_id"] = userID
	}
	return body
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, false)
	rec := ts.do(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","persistence":false}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

type pingStore struct {
	*memStore
	pingErr error
}

func (p pingStore) Ping(context.Context) error { return p.pingErr }

func TestHealth_Ping(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{name: "reachable", wantStatus: http.StatusOK, wantBody: `{"status":"ok","persistence":true}`},
		{name: "unreachable", pingErr: errors.New("connection refused"), wantStatus: http.StatusServiceUnavailable, wantBody: `{"status":"degraded","persistence":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := New(config.Builtin(), Options{
				Store:   pingStore{memStore: newMemStore(), pingErr: tt.pingErr},
				Logger:  logging.Nop(),
				Printer: &fakePrinter{},
				Limiter: disabledLimiter(),
			})
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestDatingScore(t *testing.T) {
	ts := newTestServer(t, true)
	user := uuid.NewString()

	rec := ts.do(t, http.MethodPost, "/quiz/dating/score", datingBody(user, 3))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp, result := resultAs[types.DatingResult](t, rec)
	assert.True(t, resp.Saved)
	assert.Equal(t, user, resp.UserID)
	assert.Equal(t, types.AttachmentFearfulAvoidant, result.Profile.AttachmentStyle)
	assert.LessOrEqual(t, len(result.Shifts), 8)

	stored, err := ts.store.GetSubmission(context.Background(), uuid.MustParse(user), db.QuizDating)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Contains(t, string(stored.Answers), `"question_id":33`)
}

func TestDatingScore_Anonymous(t *testing.T) {
	ts := newTestServer(t, true)
	rec := ts.do(t, http.MethodPost, "/quiz/dating/score", datingBody("", 2))
	require.Equal(t, http.StatusOK, rec.Code)

	resp, _ := resultAs[types.DatingResult](t, rec)
	assert.False(t, resp.Saved)
	assert.Empty(t, ts.store.subs)
}

func TestDatingScore_UserHeader(t *testing.T) {
	ts := newTestServer(t, true)
	user := uuid.New()

	rec := ts.do(t, http.MethodPost, "/quiz/dating/score", datingBody("", 4), middleware.UserIDHeader, user.String())
	require.Equal(t, http.StatusOK, rec.Code)
	resp, _ := resultAs[types.DatingResult](t, rec)
	assert.True(t, resp.Saved)
	assert.Equal(t, user.String(), resp.UserID)

	rec = ts.do(t, http.MethodPost, "/quiz/dating/score", datingBody(uuid.NewString(), 4), middleware.UserIDHeader, user.String())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorOf(t, rec).Error, "does not match")
}

func TestDatingScore_Rejects(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantError  string
	}{
		{name: "empty body", body: "", wantStatus: http.StatusBadRequest, wantError: "body - is required"},
		{name: "invalid json", body: "{", wantStatus: http.StatusBadRequest, wantError: "invalid JSON"},
		{name: "schema", body: `{"answers":[{"question_id":"one"}]}`, wantStatus: http.StatusBadRequest, wantError: "request does not match schema"},
		{name: "unknown field", body: `{"answers":[],"extra":1}`, wantStatus: http.StatusBadRequest, wantError: "request does not match schema"},
		{name: "no answers", body: `{"answers":[]}`, wantStatus: http.StatusBadRequest, wantError: "failed min"},
		{name: "likert out of range", body: datingBody("", 6), wantStatus: http.StatusUnprocessableEntity, wantError: "between 1 and 5"},
		{name: "duplicate", body: `{"answers":[{"question_id":1,"value":2},{"question_id":1,"value":3}]}`, wantStatus: http.StatusUnprocessableEntity, wantError: "duplicate"},
	}

	ts := newTestServer(t, false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, "/quiz/dating/score", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Contains(t, errorOf(t, rec).Error, tt.wantError)
		})
	}
}

func TestDatingScore_SchemaDetails(t *testing.T) {
	ts := newTestServer(t, false)
	rec := ts.do(t, http.MethodPost, "/quiz/dating/score", `{"answers":[{"question_id":0}]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := errorOf(t, rec)
	require.NotEmpty(t, body.Details)
	assert.Equal(t, "answers.0.question_id", body.Details[0].Field)
}

func TestDatingScore_FixedSeed(t *testing.T) {
	cfg := config.Builtin()
	cfg.MindsetSeed = 99
	s := New(cfg, Options{Logger: logging.Nop(), Limiter: disabledLimiter()})
	ts := &testServer{Server: s, handler: s.Handler()}

	first := ts.do(t, http.MethodPost, "/quiz/dating/score", datingBody("", 3))
	second := ts.do(t, http.MethodPost, "/quiz/dating/score", datingBody("", 3))
	require.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestRunPlan(t *testing.T) {
	ts := newTestServer(t, true)
	user := uuid.NewString()

	rec := ts.do(t, http.MethodPost, "/quiz/run/plan", runningBody(user))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp, result := resultAs[types.TrainingResult](t, rec)
	assert.True(t, resp.Saved)
	assert.Equal(t, "steady_improver", result.Persona.ID)
	assert.Len(t, result.Plan.Weeks, 12)
	assert.Equal(t, types.TrainingLoadData{AverageWeeklyKm: 26.2, PeakWeeklyKm: 35, TrainingDaysPerWeek: 4}, result.Load)
}

func TestRunPlan_InvalidAnswer(t *testing.T) {
	ts := newTestServer(t, false)
	body := runningBody("")
	body["answers"].([]map[string]any)[2]["value"] = "ultra"

	rec := ts.do(t, http.MethodPost, "/quiz/run/plan", body)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, errorOf(t, rec).Error, "question 3")
}

func TestNutritionPlan_ExplicitLoad(t *testing.T) {
	ts := newTestServer(t, false)
	rec := ts.do(t, http.MethodPost, "/nutrition/plan", nutritionBody("", true))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	_, plan := resultAs[types.NutritionPlan](t, rec)
	assert.Equal(t, 1649, plan.BMR)
	assert.Equal(t, 2474, plan.TDEE)
	assert.Equal(t, 2474, plan.DailyCalories)
}

func TestNutritionPlan_StoredLoad(t *testing.T) {
	ts := newTestServer(t, true)
	user := uuid.NewString()

	rec := ts.do(t, http.MethodPost, "/nutrition/plan", nutritionBody(user, false))
	assert.Equal(t, http.StatusNotFound, rec.Code, "no running plan stored yet")

	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/quiz/run/plan", runningBody(user)).Code)

	rec = ts.do(t, http.MethodPost, "/nutrition/plan", nutritionBody(user, false))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp, plan := resultAs[types.NutritionPlan](t, rec)
	assert.True(t, resp.Saved)
	assert.Equal(t, 2474, plan.DailyCalories)
}

func TestNutritionPlan_Errors(t *testing.T) {
	tests := []struct {
		name       string
		withStore  bool
		body       map[string]any
		wantStatus int
		wantError  string
	}{
		{
			name:       "no load and no user",
			withStore:  true,
			body:       nutritionBody("", false),
			wantStatus: http.StatusBadRequest,
			wantError:  "training_load",
		},
		{
			name:       "no load and no store",
			body:       nutritionBody(uuid.NewString(), false),
			wantStatus: http.StatusServiceUnavailable,
			wantError:  "persistence is not configured",
		},
		{
			name: "missing sex",
			body: func() map[string]any {
				b := nutritionBody("", true)
				delete(b["nutrition"].(map[string]any), "sex")
				return b
			}(),
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "missing required nutrition field: sex",
		},
		{
			name: "negative weight",
			body: func() map[string]any {
				b := nutritionBody("", true)
				b["nutrition"].(map[string]any)["weight_kg"] = -1
				return b
			}(),
			wantStatus: http.StatusBadRequest,
			wantError:  "request does not match schema",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, tt.withStore)
			rec := ts.do(t, http.MethodPost, "/nutrition/plan", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Contains(t, errorOf(t, rec).Error, tt.wantError)
		})
	}
}

func TestScreeningScore(t *testing.T) {
	ts := newTestServer(t, false)
	rec := ts.do(t, http.MethodPost, "/screening/score", screeningBody("", 2))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	_, result := resultAs[types.MovementScreeningResult](t, rec)
	assert.Equal(t, 14, result.Total)
	assert.Equal(t, types.PathwayPerformance, result.Pathway)
}

func TestScreeningScore_MissingTest(t *testing.T) {
	ts := newTestServer(t, false)
	body := screeningBody("", 1)
	body["scores"] = body["scores"].([]map[string]any)[:4]

	rec := ts.do(t, http.MethodPost, "/screening/score", body)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, errorOf(t, rec).Error, "split_squat")
}

func TestJourney(t *testing.T) {
	ts := newTestServer(t, true)
	user := uuid.NewString()

	body := map[string]any{
		"user_id":   user,
		"dating":    datingBody("", 3)["answers"],
		"running":   runningBody("")["answers"],
		"nutrition": nutritionBody("", false)["nutrition"],
		"screening": screeningBody("", 1)["scores"],
	}
	rec := ts.do(t, http.MethodPost, "/journey", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		Saved  bool `json:"saved"`
		Result struct {
			Nutrition types.NutritionPlan           `json:"nutrition"`
			Screening types.MovementScreeningResult `json:"screening"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.True(t, out.Saved)
	assert.Equal(t, 2474, out.Result.Nutrition.DailyCalories)
	assert.Equal(t, 7, out.Result.Screening.Total)

	subs, err := ts.store.ListSubmissions(context.Background(), uuid.MustParse(user))
	require.NoError(t, err)
	assert.Len(t, subs, 4)
}

func TestJourney_Errors(t *testing.T) {
	ts := newTestServer(t, false)

	rec := ts.do(t, http.MethodPost, "/journey", `{"user_id":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodPost, "/journey", map[string]any{"nutrition": nutritionBody("", false)["nutrition"]})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, errorOf(t, rec).Error, "plan_run")
}

func TestResults(t *testing.T) {
	ts := newTestServer(t, true)
	user := uuid.NewString()
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/quiz/dating/score", datingBody(user, 3)).Code)
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/screening/score", screeningBody(user, 1)).Code)

	rec := ts.do(t, http.MethodGet, "/users/"+user+"/results", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Results []db.Submission `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Results, 2)

	rec = ts.do(t, http.MethodGet, "/users/"+user+"/results/screening", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var sub db.Submission
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sub))
	assert.Equal(t, db.QuizScreening, sub.Quiz)
	assert.Contains(t, string(sub.Result), `"total":7`)

	rec = ts.do(t, http.MethodGet, "/users/"+user+"/results/running", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/users/"+user+"/results", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":2}`, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/users/"+user+"/results", nil)
	assert.JSONEq(t, `{"user_id":"`+user+`","results":[]}`, rec.Body.String())
}

func TestResults_Errors(t *testing.T) {
	tests := []struct {
		name       string
		withStore  bool
		method     string
		target     string
		wantStatus int
	}{
		{name: "bad user id", withStore: true, method: http.MethodGet, target: "/users/nope/results", wantStatus: http.StatusBadRequest},
		{name: "bad quiz", withStore: true, method: http.MethodGet, target: "/users/" + uuid.NewString() + "/results/tarot", wantStatus: http.StatusBadRequest},
		{name: "list without store", method: http.MethodGet, target: "/users/" + uuid.NewString() + "/results", wantStatus: http.StatusServiceUnavailable},
		{name: "get without store", method: http.MethodGet, target: "/users/" + uuid.NewString() + "/results/dating", wantStatus: http.StatusServiceUnavailable},
		{name: "delete without store", method: http.MethodDelete, target: "/users/" + uuid.NewString() + "/results", wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, tt.withStore)
			rec := ts.do(t, tt.method, tt.target, nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestStoreFailure(t *testing.T) {
	ts := newTestServer(t, true)
	ts.store.err = errors.New("connection refused")

	rec := ts.do(t, http.MethodPost, "/quiz/dating/score", datingBody(uuid.NewString(), 3))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", errorOf(t, rec).Error)
}

func profileDocument(t *testing.T, ts *testServer) string {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/quiz/dating/score", datingBody("", 3))
	require.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return string(envelope.Result)
}

func TestReport_HTMLFromBody(t *testing.T) {
	ts := newTestServer(t, false)
	rec := ts.do(t, http.MethodPost, "/reports/profile", profileDocument(t, ts))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find("#attachment").Length())
	assert.Equal(t, len(types.AllSubscales), doc.Find("tr.trait").Length())
}

func TestReport_PDF(t *testing.T) {
	ts := newTestServer(t, false)
	rec := ts.do(t, http.MethodPost, "/reports/profile?format=pdf", profileDocument(t, ts))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="profile-report.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
	assert.Contains(t, ts.printer.html, `id="attachment"`)
}

func TestReport_PDFFailure(t *testing.T) {
	ts := newTestServer(t, false)
	ts.printer.err = errors.New("chrome not found")

	rec := ts.do(t, http.MethodPost, "/reports/profile?format=pdf", profileDocument(t, ts))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestReport_StoredTraining(t *testing.T) {
	ts := newTestServer(t, true)
	user := uuid.NewString()
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/quiz/run/plan", runningBody(user)).Code)

	rec := ts.do(t, http.MethodPost, "/reports/training?user_id="+user, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 12, doc.Find("tr.week").Length())
	assert.Zero(t, doc.Find("#nutrition").Length())

	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/nutrition/plan", nutritionBody(user, false)).Code)
	rec = ts.do(t, http.MethodPost, "/reports/training?user_id="+user, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	doc, err = goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "2474 kcal", doc.Find("#nutrition td.daily").Text())
}

func TestReport_StoredScreening(t *testing.T) {
	ts := newTestServer(t, true)
	user := uuid.NewString()
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/screening/score", screeningBody(user, 2)).Code)

	rec := ts.do(t, http.MethodPost, "/reports/screening?user_id="+user, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "14 / 14", doc.Find("p.total").Text())
}

func TestReport_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       any
		wantStatus int
	}{
		{name: "unknown kind", target: "/reports/tarot", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "unknown format", target: "/reports/profile?format=docx", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "schema", target: "/reports/profile", body: `{"priorities":[]}`, wantStatus: http.StatusBadRequest},
		{name: "undecodable screening", target: "/reports/screening", body: `{"total":"many"}`, wantStatus: http.StatusBadRequest},
		{name: "bad user id", target: "/reports/profile?user_id=nope", wantStatus: http.StatusBadRequest},
		{name: "stored without store", target: "/reports/profile?user_id=" + uuid.NewString(), wantStatus: http.StatusServiceUnavailable},
	}

	ts := newTestServer(t, false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, tt.target, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestRateLimit(t *testing.T) {
	limiter := ratelimit.NewLimiter(&ratelimit.Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Hour,
	})
	defer limiter.Stop()
	s := New(config.Builtin(), Options{Logger: logging.Nop(), Limiter: limiter})
	ts := &testServer{Server: s, handler: s.Handler()}

	first := ts.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", first.Header().Get("X-RateLimit-Remaining"))

	second := ts.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
	assert.Contains(t, second.Body.String(), "rate_limit_exceeded")
}

func TestCORS(t *testing.T) {
	cfg := config.Builtin()
	cfg.AllowedOrigins = []string{"https://app.example.com"}
	s := New(cfg, Options{Logger: logging.Nop(), Limiter: disabledLimiter()})
	ts := &testServer{Server: s, handler: s.Handler()}

	rec := ts.do(t, http.MethodOptions, "/quiz/dating/score", nil, "Origin", "https://app.example.com")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), middleware.UserIDHeader)

	rec = ts.do(t, http.MethodGet, "/health", nil, "Origin", "https://evil.example.com")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	open := newTestServer(t, false)
	rec = open.do(t, http.MethodGet, "/health", nil, "Origin", "https://anywhere.example.com")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogging_RecordsRequests(t *testing.T) {
	var buf bytes.Buffer
	s := New(config.Builtin(), Options{Logger: logging.NewWriter(&buf), Limiter: disabledLimiter()})
	ts := &testServer{Server: s, handler: s.Handler()}

	ts.do(t, http.MethodGet, "/users/nope/results", nil, middleware.RequestIDHeader, "req-42")

	out := buf.String()
	assert.Contains(t, out, `"path":"/users/nope/results"`)
	assert.Contains(t, out, `"status":400`)
	assert.Contains(t, out, `"request_id":"req-42"`)
}
