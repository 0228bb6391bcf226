package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/confirm"
	"taskboard/internal/pkg/config"
	"taskboard/internal/repository"
	"taskboard/internal/service"
	pkgErrors "taskboard/pkg/errors"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Detail  string          `json:"detail"`
	Data    json.RawMessage `json:"data"`
	Total   int64           `json:"total"`
}

type client struct {
	t     *testing.T
	r     *gin.Engine
	token string
}

func newClient(t *testing.T) *client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Auth:  config.AuthConfig{JWT: config.JWTConfig{Secret: "router-secret", AccessTokenExpire: 3600}},
		Board: config.BoardConfig{Locale: "fr", DefaultSort: "deadline"},
	}
	prev := config.GlobalConfig
	config.GlobalConfig = cfg
	t.Cleanup(func() { config.GlobalConfig = prev })

	services := service.NewServices(cfg, repository.NewStore(), confirm.NewStager(time.Minute), []string{"https://example.com/a.svg"})
	return &client{t: t, r: Setup(cfg, services)}
}

func (c *client) do(method, path string, body interface{}, out interface{}) envelope {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)
	require.Equal(c.t, http.StatusOK, w.Code, w.Body.String())

	var env envelope
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &env))
	if out != nil && len(env.Data) > 0 {
		require.NoError(c.t, json.Unmarshal(env.Data, out))
	}
	return env
}

func TestHealth(t *testing.T) {
	c := newClient(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSwaggerDocCoversRoutes(t *testing.T) {
	c := newClient(t)
	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		BasePath string                                `json:"basePath"`
		Paths    map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "/", doc.BasePath)

	pathParam := regexp.MustCompile(`:(\w+)`)
	for _, route := range c.r.Routes() {
		if !strings.HasPrefix(route.Path, "/api/v1/") {
			continue
		}
		path := pathParam.ReplaceAllString(route.Path, "{$1}")
		_, ok := doc.Paths[path][strings.ToLower(route.Method)]
		assert.True(t, ok, "%s %s missing from swagger doc", route.Method, path)
	}
}

func TestCORSAllowOriginsFromConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Server: config.ServerConfig{CORS: config.CORSConfig{AllowOrigins: []string{"https://board.example.com"}}},
		Auth:   config.AuthConfig{JWT: config.JWTConfig{Secret: "router-secret", AccessTokenExpire: 3600}},
	}
	r := Setup(cfg, service.NewServices(cfg, repository.NewStore(), confirm.NewStager(time.Minute), nil))

	preflight := httptest.NewRequest(http.MethodOptions, "/api/v1/tasks", nil)
	preflight.Header.Set("Origin", "https://board.example.com")
	preflight.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, preflight)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://board.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	other := httptest.NewRequest(http.MethodGet, "/health", nil)
	other.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, other)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestWorkflow(t *testing.T) {
	c := newClient(t)

	// 尚无用户: 登录返回404, 创建第一个用户无需token
	assert.Equal(t, pkgErrors.CodeNotFound, c.do(http.MethodPost, "/api/v1/auth/signin", nil, nil).Code)

	var created struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
		FirstUser   bool   `json:"first_user"`
		AccessToken string `json:"access_token"`
	}
	env := c.do(http.MethodPost, "/api/v1/user", gin.H{"name": "Alice", "email": "alice@example.com"}, &created)
	require.Equal(t, pkgErrors.CodeSuccess, env.Code, env.Message)
	assert.True(t, created.FirstUser)
	require.NotEmpty(t, created.AccessToken)
	alice := created.User.ID

	// 已有用户后, 未登录不能再创建
	assert.Equal(t, pkgErrors.CodeUnauthorized,
		c.do(http.MethodPost, "/api/v1/user", gin.H{"name": "Eve", "email": "eve@example.com"}, nil).Code)
	c.token = created.AccessToken

	env = c.do(http.MethodPost, "/api/v1/user", gin.H{"name": "Bruno", "email": "bruno@example.com"}, &created)
	require.Equal(t, pkgErrors.CodeSuccess, env.Code)
	assert.False(t, created.FirstUser)
	bruno := created.User.ID

	var project struct {
		ID string `json:"id"`
	}
	env = c.do(http.MethodPost, "/api/v1/project", gin.H{"name": "Site", "member_ids": []string{alice, bruno}}, &project)
	require.Equal(t, pkgErrors.CodeSuccess, env.Code, env.Message)

	// 参数校验
	env = c.do(http.MethodPost, "/api/v1/task", gin.H{"title": "x", "project_id": project.ID, "priority": "URGENT", "deadline": "2024-03-01"}, nil)
	assert.Equal(t, pkgErrors.CodeBadRequest, env.Code)
	assert.NotEmpty(t, env.Detail)

	var task struct {
		ID         string  `json:"id"`
		Status     string  `json:"status"`
		TimeLogged float64 `json:"time_logged"`
	}
	env = c.do(http.MethodPost, "/api/v1/task", gin.H{
		"title": "Maquettes", "project_id": project.ID, "priority": "HIGH",
		"deadline": "2024-03-15", "assignee_id": bruno, "estimated_time": "4",
	}, &task)
	require.Equal(t, pkgErrors.CodeSuccess, env.Code, env.Message)
	assert.Equal(t, "TODO", task.Status)

	env = c.do(http.MethodPut, "/api/v1/task/"+task.ID+"/time", gin.H{"time_logged": "-3"}, &task)
	require.Equal(t, pkgErrors.CodeSuccess, env.Code)
	assert.Zero(t, task.TimeLogged)

	env = c.do(http.MethodPut, "/api/v1/task/"+task.ID+"/status", gin.H{"status": "IN_PROGRESS"}, &task)
	require.Equal(t, pkgErrors.CodeSuccess, env.Code)
	assert.Equal(t, "IN_PROGRESS", task.Status)

	var board struct {
		Columns []struct {
			Status string `json:"status"`
			Count  int    `json:"count"`
		} `json:"columns"`
	}
	c.do(http.MethodGet, "/api/v1/board?assignee="+bruno, nil, &board)
	require.Len(t, board.Columns, 3)
	assert.Equal(t, 1, board.Columns[1].Count)

	// 删除协作者: 暂存 -> 确认 -> 级联
	var pending struct {
		ID string `json:"id"`
	}
	env = c.do(http.MethodPost, "/api/v1/users/delete", gin.H{"ids": []string{bruno}}, &pending)
	require.Equal(t, pkgErrors.CodeAccepted, env.Code)

	var users []struct{}
	c.do(http.MethodGet, "/api/v1/users", nil, &users)
	assert.Len(t, users, 2)

	var cascade struct {
		UsersRemoved    int `json:"users_removed"`
		TasksUnassigned int `json:"tasks_unassigned"`
	}
	env = c.do(http.MethodPost, "/api/v1/confirmations/"+pending.ID+"/confirm", nil, &cascade)
	require.Equal(t, pkgErrors.CodeSuccess, env.Code, env.Message)
	assert.Equal(t, 1, cascade.UsersRemoved)
	assert.Equal(t, 1, cascade.TasksUnassigned)

	var detail struct {
		AssigneeID *string `json:"assignee_id"`
	}
	c.do(http.MethodGet, "/api/v1/task?id="+task.ID, nil, &detail)
	assert.Nil(t, detail.AssigneeID)

	// 删除任务后再次确认同一请求无效
	env = c.do(http.MethodDelete, "/api/v1/task/"+task.ID, nil, &pending)
	require.Equal(t, pkgErrors.CodeAccepted, env.Code)
	assert.Equal(t, pkgErrors.CodeSuccess, c.do(http.MethodPost, "/api/v1/confirmations/"+pending.ID+"/confirm", nil, nil).Code)
	assert.Equal(t, pkgErrors.CodeNotFound, c.do(http.MethodPost, "/api/v1/confirmations/"+pending.ID+"/confirm", nil, nil).Code)
	assert.Equal(t, pkgErrors.CodeNotFound, c.do(http.MethodGet, "/api/v1/task?id="+task.ID, nil, nil).Code)
}

func TestSignInAndProfile(t *testing.T) {
	c := newClient(t)
	c.do(http.MethodPost, "/api/v1/user", gin.H{"name": "Alice", "email": "alice@example.com"}, nil)

	var signIn struct {
		AccessToken string `json:"access_token"`
	}
	env := c.do(http.MethodPost, "/api/v1/auth/signin", nil, &signIn)
	require.Equal(t, pkgErrors.CodeSuccess, env.Code)
	c.token = signIn.AccessToken

	var me struct {
		Name                 string `json:"name"`
		NotificationSettings struct {
			Email bool `json:"email"`
		} `json:"notification_settings"`
	}
	env = c.do(http.MethodPut, "/api/v1/auth/me", gin.H{
		"name": "Alice M.", "email": "alice@example.com",
		"notification_settings": gin.H{"email": false, "project_updates": true, "task_assignments": true},
	}, &me)
	require.Equal(t, pkgErrors.CodeSuccess, env.Code, env.Message)
	assert.Equal(t, "Alice M.", me.Name)
	assert.False(t, me.NotificationSettings.Email)

	var notifications struct {
		Unread int `json:"unread"`
	}
	c.do(http.MethodGet, "/api/v1/notifications", nil, &notifications)
	assert.Zero(t, notifications.Unread)

	var month struct {
		Cells []struct{} `json:"cells"`
	}
	c.do(http.MethodGet, "/api/v1/calendar?year=2024&month=3", nil, &month)
	assert.Len(t, month.Cells, 42)

	assert.Equal(t, pkgErrors.CodeBadRequest, c.do(http.MethodGet, "/api/v1/calendar?month=13", nil, nil).Code)
}
