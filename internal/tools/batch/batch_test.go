package batch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStringOrArray(t *testing.T) {
	tests := []struct {
		name     string
		param    interface{}
		expected []string
		wantErr  string
	}{
		{
			name:     "single string",
			param:    "task-1",
			expected: []string{"task-1"},
		},
		{
			name:     "array of strings",
			param:    []interface{}{"task-1", "task-2", "task-3"},
			expected: []string{"task-1", "task-2", "task-3"},
		},
		{
			name:    "nil",
			param:   nil,
			wantErr: "taskIds is required",
		},
		{
			name:    "empty string",
			param:   "",
			wantErr: "taskIds cannot be empty",
		},
		{
			name:    "empty array",
			param:   []interface{}{},
			wantErr: "taskIds cannot be empty",
		},
		{
			name:    "array with non-string element",
			param:   []interface{}{"task-1", 42},
			wantErr: "taskIds[1] must be a string",
		},
		{
			name:    "array with empty element",
			param:   []interface{}{"task-1", ""},
			wantErr: "taskIds[1] cannot be empty",
		},
		{
			name:    "number",
			param:   float64(7),
			wantErr: "taskIds must be a string or array of strings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := ParseStringOrArray(tt.param, "taskIds")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestProcessBatch(t *testing.T) {
	results := ProcessBatch(context.Background(), []string{"a", "b", "c"}, func(id string) (string, error) {
		if id == "b" {
			return "", errors.New("not found")
		}
		return fmt.Sprintf("completed %s", id), nil
	})

	require.Len(t, results, 3)
	assert.Equal(t, "success", results[0].Status)
	assert.Equal(t, "completed a", results[0].Result)
	assert.Equal(t, "error", results[1].Status)
	assert.Equal(t, "not found", results[1].Error)
	assert.Equal(t, "success", results[2].Status)
}

func TestProcessBatchKeepsOrder(t *testing.T) {
	ids := []string{"z", "a", "m"}
	results := ProcessBatch(context.Background(), ids, func(id string) (string, error) {
		return id, nil
	})

	require.Len(t, results, len(ids))
	for i, id := range ids {
		assert.Equal(t, id, results[i].ID)
	}
}

func TestProcessBatchCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	results := ProcessBatch(ctx, []string{"a", "b", "c"}, func(id string) (string, error) {
		calls++
		if id == "a" {
			cancel()
		}
		return "ok", nil
	})

	// a runs before the cancel is observed; b and c are accounted for
	// without invoking the callback.
	require.Len(t, results, 3)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "success", results[0].Status)
	assert.Equal(t, "error", results[1].Status)
	assert.Contains(t, results[1].Error, "canceled")
	assert.Equal(t, "error", results[2].Status)
}

func TestFormatResults(t *testing.T) {
	results := []Result{
		{ID: "a", Status: "success", Result: "done"},
		{ID: "b", Status: "error", Error: "boom"},
		{ID: "c", Status: "success", Result: "done"},
	}

	out := FormatResults(results)

	var s Summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Successful)
	assert.Equal(t, 1, s.Failed)
	require.Len(t, s.Results, 3)
	assert.Equal(t, "b", s.Results[1].ID)
	assert.Equal(t, "boom", s.Results[1].Error)
}

func TestFormatResultsEmpty(t *testing.T) {
	var s Summary
	require.NoError(t, json.Unmarshal([]byte(FormatResults(nil)), &s))
	assert.Zero(t, s.Total)
	assert.Zero(t, s.Successful)
	assert.Zero(t, s.Failed)
}
