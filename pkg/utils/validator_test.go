package utils

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Title    string   `json:"title" binding:"required,max=5"`
	Priority string   `json:"priority" binding:"oneof=HIGH LOW"`
	IDs      []string `json:"ids" binding:"min=1"`
	Month    int      `form:"month" binding:"omitempty,max=12"`
}

func TestFormatValidationError(t *testing.T) {
	UseJSONFieldNames()

	err := binding.Validator.ValidateStruct(&sampleRequest{Title: "too long title", Priority: "MID", Month: 13})
	msg := FormatValidationError(err)

	assert.Contains(t, msg, "field 'title' must be at most 5 characters")
	assert.Contains(t, msg, "field 'priority' must be one of: HIGH LOW")
	assert.Contains(t, msg, "field 'ids' must be at least 1 items")
	assert.Contains(t, msg, "field 'month' must be at most 12")
}

func TestFormatValidationError_JSON(t *testing.T) {
	var out struct {
		N int `json:"n"`
	}
	err := json.Unmarshal([]byte(`{"n":"x"}`), &out)
	assert.Equal(t, "field 'n' should be int", FormatValidationError(err))

	err = json.Unmarshal([]byte(`{`), &out)
	assert.Equal(t, "invalid JSON format", FormatValidationError(err))

	assert.Equal(t, "boom", FormatValidationError(errors.New("boom")))
	assert.Empty(t, FormatValidationError(nil))
}
