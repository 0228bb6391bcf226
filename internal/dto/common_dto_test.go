package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHours_UnmarshalJSON(t *testing.T) {
	cases := map[string]float64{
		`{"time_logged": 3.5}`:    3.5,
		`{"time_logged": "2.25"}`: 2.25,
		`{"time_logged": "abc"}`:  0,
		`{"time_logged": -4}`:     0,
		`{"time_logged": "NaN"}`:  0,
		`{"time_logged": null}`:   0,
		`{}`:                      0,
	}
	for body, want := range cases {
		var req UpdateTimeLoggedRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req), body)
		assert.Equal(t, want, req.TimeLogged.Float64(), body)
	}
}

func TestUpdateTaskRequest_Flattened(t *testing.T) {
	var req UpdateTaskRequest
	body := `{"id":"t_1","title":"Brief","deadline":"2024-03-15","priority":"LOW","project_id":"p_1","estimated_time":"8"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, "t_1", req.ID)
	assert.Equal(t, "Brief", req.Title)
	require.NotNil(t, req.Deadline)
	assert.Equal(t, "2024-03-15", req.Deadline.String())
	assert.Equal(t, 8.0, req.EstimatedTime.Float64())
}
