package handler_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/taskdeck/backend/api/handler"
	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/internal/infrastructure/monitor"
	"github.com/taskdeck/backend/internal/middleware"
	"github.com/taskdeck/backend/internal/router"
	"github.com/taskdeck/backend/pkg/httpcontext"
	"github.com/taskdeck/backend/repository/memory"
	authUC "github.com/taskdeck/backend/usecase/auth"
	taskUC "github.com/taskdeck/backend/usecase/task"
)

var testSecret = []byte("handler-test-secret")

func newTestHandler(t *testing.T) fasthttp.RequestHandler {
	t.Helper()

	userRepo := memory.NewUserRepository()
	taskRepo := memory.NewTaskRepository()
	adapter := httpcontext.NewAdapter(time.Second)

	handlers := router.Handlers{
		Auth:   apiHandler.NewAuthHandler(authUC.New(userRepo, testSecret, time.Hour, nil), adapter, nil),
		Task:   apiHandler.NewTaskHandler(taskUC.New(taskRepo, nil), adapter, nil),
		Health: apiHandler.NewHealthHandler(monitor.New(nil, time.Minute, nil), adapter, nil),
	}

	guard := middleware.JWTAuth(testSecret, nil)
	cors := middleware.CORS("*")
	return router.New(handlers, guard, cors)
}

func do(t *testing.T, handler fasthttp.RequestHandler, method, path, token string, body interface{}) (int, []byte) {
	t.Helper()

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetRequestURI(path)
	ctx.Request.Header.SetMethod(method)
	if token != "" {
		ctx.Request.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		ctx.Request.SetBody(payload)
		ctx.Request.Header.SetContentType("application/json")
	}

	handler(ctx)
	return ctx.Response.StatusCode(), append([]byte(nil), ctx.Response.Body()...)
}

func register(t *testing.T, handler fasthttp.RequestHandler, email, password string) {
	t.Helper()
	status, _ := do(t, handler, fasthttp.MethodPost, "/auth/register", "",
		map[string]string{"email": email, "password": password})
	require.Equal(t, fasthttp.StatusCreated, status)
}

func login(t *testing.T, handler fasthttp.RequestHandler, email, password string) string {
	t.Helper()
	status, body := do(t, handler, fasthttp.MethodPost, "/auth/login", "",
		map[string]string{"email": email, "password": password})
	require.Equal(t, fasthttp.StatusOK, status)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)
	register(t, handler, "a@x.com", "pw1")

	status, body := do(t, handler, fasthttp.MethodPost, "/auth/register", "",
		map[string]string{"email": "a@x.com", "password": "pw2"})
	assert.Equal(t, fasthttp.StatusBadRequest, status)
	assert.Contains(t, string(body), "already exists")
}

func TestRegister_MissingFields(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)

	status, _ := do(t, handler, fasthttp.MethodPost, "/auth/register", "",
		map[string]string{"email": "a@x.com"})
	assert.Equal(t, fasthttp.StatusBadRequest, status)

	status, _ = do(t, handler, fasthttp.MethodPost, "/auth/register", "",
		map[string]string{"password": "pw"})
	assert.Equal(t, fasthttp.StatusBadRequest, status)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)
	register(t, handler, "a@x.com", "pw1")

	status1, body1 := do(t, handler, fasthttp.MethodPost, "/auth/login", "",
		map[string]string{"email": "a@x.com", "password": "wrong"})
	status2, body2 := do(t, handler, fasthttp.MethodPost, "/auth/login", "",
		map[string]string{"email": "ghost@x.com", "password": "pw1"})

	assert.Equal(t, fasthttp.StatusUnauthorized, status1)
	assert.Equal(t, fasthttp.StatusUnauthorized, status2)
	// responses must not reveal whether the account exists
	assert.Equal(t, string(body1), string(body2))
}

func TestTasks_RequireAuth(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)

	for _, probe := range []struct {
		method string
		path   string
	}{
		{fasthttp.MethodGet, "/tasks"},
		{fasthttp.MethodPost, "/tasks"},
		{fasthttp.MethodPatch, "/tasks/some-id"},
		{fasthttp.MethodDelete, "/tasks/some-id"},
		{fasthttp.MethodGet, "/auth/me"},
	} {
		status, _ := do(t, handler, probe.method, probe.path, "", nil)
		assert.Equalf(t, fasthttp.StatusUnauthorized, status, "%s %s", probe.method, probe.path)
	}
}

func TestTasks_CreateValidation(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)
	register(t, handler, "a@x.com", "pw1")
	token := login(t, handler, "a@x.com", "pw1")

	status, _ := do(t, handler, fasthttp.MethodPost, "/tasks", token,
		map[string]string{"title": "   "})
	assert.Equal(t, fasthttp.StatusBadRequest, status)

	status, _ = do(t, handler, fasthttp.MethodPost, "/tasks", token,
		map[string]string{"title": "with due", "dueDate": "not-a-date"})
	assert.Equal(t, fasthttp.StatusBadRequest, status)
}

func TestTasks_FullScenario(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)

	register(t, handler, "a@x.com", "pw1")
	tokenA := login(t, handler, "a@x.com", "pw1")

	// create
	status, body := do(t, handler, fasthttp.MethodPost, "/tasks", tokenA,
		map[string]string{"title": "buy milk"})
	require.Equal(t, fasthttp.StatusCreated, status)

	var created domain.Task
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, "buy milk", created.Title)
	assert.False(t, created.Completed)
	assert.NotEmpty(t, created.OwnerID)

	// round-trip: the list contains exactly that task
	status, body = do(t, handler, fasthttp.MethodGet, "/tasks", tokenA, nil)
	require.Equal(t, fasthttp.StatusOK, status)

	var listed []domain.Task
	require.NoError(t, json.Unmarshal(body, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	// complete it
	status, body = do(t, handler, fasthttp.MethodPatch, "/tasks/"+created.ID, tokenA,
		map[string]bool{"completed": true})
	require.Equal(t, fasthttp.StatusOK, status)

	var patched domain.Task
	require.NoError(t, json.Unmarshal(body, &patched))
	assert.True(t, patched.Completed)
	assert.Equal(t, "buy milk", patched.Title)

	// a different user sees an empty list and cannot touch the task
	register(t, handler, "b@x.com", "pw2")
	tokenB := login(t, handler, "b@x.com", "pw2")

	status, body = do(t, handler, fasthttp.MethodGet, "/tasks", tokenB, nil)
	require.Equal(t, fasthttp.StatusOK, status)
	assert.Equal(t, "[]", string(body))

	status, _ = do(t, handler, fasthttp.MethodPatch, "/tasks/"+created.ID, tokenB,
		map[string]bool{"completed": false})
	assert.Equal(t, fasthttp.StatusNotFound, status)

	status, _ = do(t, handler, fasthttp.MethodDelete, "/tasks/"+created.ID, tokenB, nil)
	assert.Equal(t, fasthttp.StatusNotFound, status)

	// owner deletes; repeating reports not found
	status, _ = do(t, handler, fasthttp.MethodDelete, "/tasks/"+created.ID, tokenA, nil)
	require.Equal(t, fasthttp.StatusOK, status)

	status, _ = do(t, handler, fasthttp.MethodDelete, "/tasks/"+created.ID, tokenA, nil)
	assert.Equal(t, fasthttp.StatusNotFound, status)
}

func TestAuthMe(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)
	register(t, handler, "me@x.com", "pw1")
	token := login(t, handler, "me@x.com", "pw1")

	status, body := do(t, handler, fasthttp.MethodGet, "/auth/me", token, nil)
	require.Equal(t, fasthttp.StatusOK, status)

	var me struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(body, &me))
	assert.Equal(t, "me@x.com", me.Email)
	assert.NotEmpty(t, me.ID)
	assert.NotContains(t, string(body), "pw1")
	assert.NotContains(t, string(body), "passwordHash")
}

func TestTasks_MalformedBody(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)
	register(t, handler, "a@x.com", "pw1")
	token := login(t, handler, "a@x.com", "pw1")

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetRequestURI("/tasks")
	ctx.Request.Header.SetMethod(fasthttp.MethodPost)
	ctx.Request.Header.Set("Authorization", "Bearer "+token)
	ctx.Request.SetBodyString("{not json")

	handler(ctx)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}
