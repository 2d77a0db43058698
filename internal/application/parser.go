package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pabloapp/pablo-api/internal/domain/entity"
)

// ErrMalformedModelOutput marks model text that failed strict decoding.
// The model is an untrusted text generator; this parser is the sole trust
// boundary and no decode failure may escape it as a panic.
var ErrMalformedModelOutput = errors.New("malformed model output")

type taskListOut struct {
	Tasks []string `json:"tasks"`
}

type validationOut struct {
	Valid      *bool    `json:"valid"`
	Reason     *string  `json:"reason"`
	Confidence *float64 `json:"confidence"`
}

// ParseTaskList decodes {"tasks":[string,...]} from raw model text. Entries
// are trimmed and empty ones dropped, preserving order. Any decode or schema
// failure yields ErrMalformedModelOutput; callers degrade to an empty list.
func ParseTaskList(raw string) ([]string, error) {
	var out taskListOut
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedModelOutput, err)
	}
	if out.Tasks == nil {
		return nil, fmt.Errorf("%w: missing tasks field", ErrMalformedModelOutput)
	}
	tasks := make([]string, 0, len(out.Tasks))
	for _, t := range out.Tasks {
		t = strings.TrimSpace(t)
		if t != "" {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

// ParseValidation decodes {"valid","reason","confidence"} and clamps
// confidence into [0,1]. On failure it returns the documented fallback
// verdict alongside ErrMalformedModelOutput, so callers can hand the
// fallback straight to the client.
func ParseValidation(raw string) (entity.ValidationResult, error) {
	fallback := entity.ValidationResult{
		Valid:      false,
		Reason:     "Failed to parse model output",
		Confidence: 0,
	}

	var out validationOut
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return fallback, fmt.Errorf("%w: %v", ErrMalformedModelOutput, err)
	}
	if out.Valid == nil || out.Reason == nil || out.Confidence == nil {
		return fallback, fmt.Errorf("%w: missing verdict field", ErrMalformedModelOutput)
	}

	conf := *out.Confidence
	if conf < 0 {
		conf = 0
	}
	if conf > 1 {
		conf = 1
	}
	return entity.ValidationResult{Valid: *out.Valid, Reason: *out.Reason, Confidence: conf}, nil
}
