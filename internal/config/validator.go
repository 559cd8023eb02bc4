package config

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// ValidationError is a single rejected config field.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// MaxTimingMs is the largest millisecond value that still fits a
// time.Duration.
const MaxTimingMs = math.MaxInt64 / int64(time.Millisecond)

// Validate returns every problem found; nil means the config is usable.
// Theme names are not checked here since unknown themes fall back to the
// default at render time.
func (c *Config) Validate() ValidationErrors {
	var errs ValidationErrors

	if len(c.Phrases) == 0 {
		errs = append(errs, ValidationError{
			Field:   "phrases",
			Value:   c.Phrases,
			Message: "at least one phrase is required",
		})
	}

	timings := []struct {
		field string
		value int
	}{
		{"timing.typing_ms", c.Timing.TypingMs},
		{"timing.deleting_ms", c.Timing.DeletingMs},
		{"timing.pause_complete_ms", c.Timing.PauseCompleteMs},
		{"timing.pause_empty_ms", c.Timing.PauseEmptyMs},
	}
	for _, tm := range timings {
		switch {
		case tm.value < 0:
			errs = append(errs, ValidationError{
				Field:   tm.field,
				Value:   tm.value,
				Message: "must be zero or positive",
			})
		case int64(tm.value) > MaxTimingMs:
			errs = append(errs, ValidationError{
				Field:   tm.field,
				Value:   tm.value,
				Message: fmt.Sprintf("must not exceed %d", MaxTimingMs),
			})
		}
	}

	return errs
}
