package notification

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"taskboard/internal/model"
)

func sampleTask() model.Task {
	assignee := "u_1"
	return model.Task{
		ID:         "t_1",
		Title:      "Maquettes",
		AssigneeID: &assignee,
		Deadline:   model.NewDate(2024, 3, 15),
		Priority:   model.TaskPriorityHigh,
		ProjectID:  "p_1",
	}
}

func TestLarkNotifier_Send(t *testing.T) {
	var body map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewLarkNotifier(srv.URL, true, zap.NewNop())
	require.NoError(t, n.SendTaskNotification(context.Background(), sampleTask(), NotifyTaskOverdue, "已逾期"))

	assert.Equal(t, "interactive", body["msg_type"])
	header := body["card"].(map[string]interface{})["header"].(map[string]interface{})
	assert.Equal(t, "red", header["template"])
}

func TestLarkNotifier_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewLarkNotifier(srv.URL, true, zap.NewNop())
	assert.Error(t, n.Send(context.Background(), NewTaskMessage(sampleTask(), NotifyTaskOverdue, "x")))
}

func TestLarkNotifier_Disabled(t *testing.T) {
	n := NewLarkNotifier("http://127.0.0.1:0", false, zap.NewNop())
	assert.NoError(t, n.Send(context.Background(), NewTaskMessage(sampleTask(), NotifyTaskOverdue, "x")))
}

type failingNotifier struct{ calls int }

func (f *failingNotifier) Send(context.Context, *NotificationMessage) error {
	f.calls++
	return errors.New("down")
}

func (f *failingNotifier) SendTaskNotification(ctx context.Context, _ model.Task, _ NotificationType, _ string) error {
	return f.Send(ctx, nil)
}

func TestMultiNotifier_ContinuesOnError(t *testing.T) {
	first, second := &failingNotifier{}, &failingNotifier{}
	m := NewMultiNotifier(zap.NewNop(), first, NewLogNotifier(zap.NewNop()), second)

	err := m.SendTaskNotification(context.Background(), sampleTask(), NotifyTaskOverdue, "x")
	assert.Error(t, err)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestNewTaskMessage(t *testing.T) {
	msg := NewTaskMessage(sampleTask(), NotifyTaskOverdue, "已逾期")
	assert.Contains(t, msg.Content, "2024-03-15")
	assert.Equal(t, "u_1", msg.Extra["assignee_id"])
}
