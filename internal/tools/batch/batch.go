package batch

import (
	"context"
	"encoding/json"
	"fmt"
)

// Result is the outcome of one item in a batch.
type Result struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Summary aggregates a batch for the tool response.
type Summary struct {
	Total      int      `json:"total"`
	Successful int      `json:"successful"`
	Failed     int      `json:"failed"`
	Results    []Result `json:"results"`
}

// ParseStringOrArray accepts a tool argument that may be a single string
// or an array of strings and normalizes it to a non-empty slice.
// MCP clients send both shapes for ID parameters.
func ParseStringOrArray(param interface{}, paramName string) ([]string, error) {
	switch v := param.(type) {
	case nil:
		return nil, fmt.Errorf("%s is required", paramName)
	case string:
		if v == "" {
			return nil, fmt.Errorf("%s cannot be empty", paramName)
		}
		return []string{v}, nil
	case []interface{}:
		if len(v) == 0 {
			return nil, fmt.Errorf("%s cannot be empty", paramName)
		}
		ids := make([]string, 0, len(v))
		for i, item := range v {
			id, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s[%d] must be a string", paramName, i)
			}
			if id == "" {
				return nil, fmt.Errorf("%s[%d] cannot be empty", paramName, i)
			}
			ids = append(ids, id)
		}
		return ids, nil
	default:
		return nil, fmt.Errorf("%s must be a string or array of strings", paramName)
	}
}

// ProcessBatch applies fn to each ID in order and collects per-item
// outcomes. A failing item never stops the batch, but a canceled
// context does: remaining items are recorded as errors without calling
// fn, so the summary still accounts for every requested ID.
func ProcessBatch(ctx context.Context, ids []string, fn func(id string) (string, error)) []Result {
	results := make([]Result, 0, len(ids))

	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			for _, rest := range ids[i:] {
				results = append(results, Result{ID: rest, Status: "error", Error: err.Error()})
			}
			break
		}
		res, err := fn(id)
		if err != nil {
			results = append(results, Result{ID: id, Status: "error", Error: err.Error()})
			continue
		}
		results = append(results, Result{ID: id, Status: "success", Result: res})
	}

	return results
}

// FormatResults renders the per-item outcomes as an indented JSON
// summary with success/failure counts.
func FormatResults(results []Result) string {
	s := Summary{
		Total:   len(results),
		Results: results,
	}
	for _, r := range results {
		if r.Status == "success" {
			s.Successful++
		} else {
			s.Failed++
		}
	}

	out, _ := json.MarshalIndent(s, "", "  ")
	return string(out)
}
