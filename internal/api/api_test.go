package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/yourname/wellnesstracker/internal"
	"github.com/yourname/wellnesstracker/internal/api"
	"github.com/yourname/wellnesstracker/internal/auth"
	"github.com/yourname/wellnesstracker/internal/client"
	"github.com/yourname/wellnesstracker/internal/config"
	"github.com/yourname/wellnesstracker/internal/store"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Env:            "development",
		JWTSecret:      "test-secret",
		TokenTTLHours:  1,
		StorageBackend: "memory",
	}
	logger := internal.NewNopLogger()
	users, logs := store.NewMemoryRepositories(logger)
	app := api.NewApp(logger, users, logs, cfg)
	provider := auth.NewLocalProvider(cfg.JWTSecret, logger)
	return api.NewRouter(app, provider)
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(rec, req)
	return rec
}

func signup(t *testing.T, r *gin.Engine, email string) internal.AuthResponse {
	body := `{"email":"` + email + `","password":"password123","confirmPassword":"password123"}`
	rec := doJSON(r, "POST", "/auth/signup", body, "")
	assert.Equal(t, 201, rec.Code)
	var res internal.AuthResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.NotEmpty(t, res.Token)
	return res
}

func TestSignupAndLogin(t *testing.T) {
	r := setupRouter()

	res := signup(t, r, "a@b.com")
	assert.Equal(t, "a@b.com", res.User.Email)

	// Duplicate email conflicts.
	rec := doJSON(r, "POST", "/auth/signup", `{"email":"a@b.com","password":"password123","confirmPassword":"password123"}`, "")
	assert.Equal(t, 409, rec.Code)
	assert.Contains(t, rec.Body.String(), "User with this email already exists")

	rec = doJSON(r, "POST", "/auth/login", `{"email":"a@b.com","password":"password123"}`, "")
	assert.Equal(t, 200, rec.Code)

	rec = doJSON(r, "POST", "/auth/login", `{"email":"a@b.com","password":"wrong-password"}`, "")
	assert.Equal(t, 401, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")

	// Validation failures never reach the service.
	rec = doJSON(r, "POST", "/auth/signup", `{"email":"b@c.com","password":"short","confirmPassword":"short"}`, "")
	assert.Equal(t, 400, rec.Code)
}

func TestLogEndpoints(t *testing.T) {
	r := setupRouter()
	token := signup(t, r, "a@b.com").Token

	rec := doJSON(r, "GET", "/wellness-logs", "", "")
	assert.Equal(t, 401, rec.Code)

	rec = doJSON(r, "GET", "/wellness-logs", "", token)
	assert.Equal(t, 200, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = doJSON(r, "POST", "/wellness-logs", `{"mood":"Tired","sleepDuration":5,"activityNotes":"slept badly"}`, token)
	assert.Equal(t, 201, rec.Code)
	var created internal.WellnessLog
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, internal.MoodTired, created.Mood)

	// Out-of-range sleep is rejected before it ever hits storage.
	rec = doJSON(r, "POST", "/wellness-logs", `{"mood":"Tired","sleepDuration":13,"activityNotes":"nope"}`, token)
	assert.Equal(t, 400, rec.Code)

	rec = doJSON(r, "GET", "/wellness-logs", "", token)
	assert.Equal(t, 200, rec.Code)
	var logs []internal.WellnessLog
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &logs))
	assert.Len(t, logs, 1)

	rec = doJSON(r, "PUT", "/wellness-logs/"+created.ID, `{"sleepDuration":6}`, token)
	assert.Equal(t, 200, rec.Code)
	var updated internal.WellnessLog
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 6.0, updated.SleepDuration)
	assert.Equal(t, internal.MoodTired, updated.Mood)

	rec = doJSON(r, "PUT", "/wellness-logs/missing", `{"sleepDuration":6}`, token)
	assert.Equal(t, 404, rec.Code)
	assert.Contains(t, rec.Body.String(), "Log not found")

	rec = doJSON(r, "DELETE", "/wellness-logs/"+created.ID, "", token)
	assert.Equal(t, 200, rec.Code)

	rec = doJSON(r, "DELETE", "/wellness-logs/"+created.ID, "", token)
	assert.Equal(t, 404, rec.Code)
}

type tokenHolder struct{ tok string }

func (h *tokenHolder) Token() string { return h.tok }

// The remote client and the server implement the same wire contract; run
// one against the other end to end.
func TestRemoteClientAgainstServer(t *testing.T) {
	r := setupRouter()
	srv := httptest.NewServer(r)
	defer srv.Close()

	logger := internal.NewNopLogger()
	tokens := &tokenHolder{}
	remote := client.NewRemote(srv.URL, tokens, logger)
	ctx := context.Background()

	res, err := remote.Signup(ctx, internal.SignupData{
		Email:           "a@b.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	assert.NoError(t, err)
	tokens.tok = res.Token

	created, err := remote.CreateLog(ctx, res.User.ID, internal.WellnessLogForm{
		Mood:          internal.MoodFocused,
		SleepDuration: 7.5,
		ActivityNotes: "deep work",
	})
	assert.NoError(t, err)

	logs, err := remote.ListLogs(ctx, res.User.ID)
	assert.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.Equal(t, created.ID, logs[0].ID)

	hours := 6.0
	updated, err := remote.UpdateLog(ctx, created.ID, internal.WellnessLogPatch{SleepDuration: &hours})
	assert.NoError(t, err)
	assert.Equal(t, 6.0, updated.SleepDuration)

	assert.NoError(t, remote.DeleteLog(ctx, created.ID))
	_, err = remote.UpdateLog(ctx, created.ID, internal.WellnessLogPatch{SleepDuration: &hours})
	assert.EqualError(t, err, "Log not found")

	_, err = remote.Login(ctx, internal.LoginData{Email: "a@b.com", Password: "wrong-password"})
	assert.EqualError(t, err, "Invalid credentials")
}
