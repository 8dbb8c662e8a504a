// Copyright (c) 2026 Doom4535 All rights reserved.
//
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Doom4535/rosflight/src/internal/helper/gc"
	"github.com/Doom4535/rosflight/src/logger"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoEvents indicates a scenario with an empty events list.
	ErrNoEvents = errors.New("replay: scenario has no events")
	// ErrInvalidScenario indicates malformed scenario-level settings.
	ErrInvalidScenario = errors.New("replay: invalid scenario")
	// ErrInvalidEvent indicates a malformed event entry.
	ErrInvalidEvent = errors.New("replay: invalid event")
)

// scenarioFormat represents supported scenario file formats.
type scenarioFormat int

const (
	// scenarioFormatJSON represents JSON scenario format (.json)
	scenarioFormatJSON scenarioFormat = iota
	// scenarioFormatYAML represents YAML scenario format (.yaml, .yml)
	scenarioFormatYAML
)

// Scenario is a scripted sequence of log events.
//
// Scenarios can be loaded from a JSON or YAML file, with the format detected
// from the file extension. Supported file extensions: .json, .yaml, .yml.
type Scenario struct {
	// Defaults: Settings applied to events that do not carry their own
	Defaults Defaults `json:"defaults" yaml:"defaults"`
	// Events: The ordered sequence of log events to replay
	Events []Event `json:"events" yaml:"events"`
}

// Defaults holds scenario-wide settings.
type Defaults struct {
	// PeriodSeconds: Throttle window, in seconds, for throttled events
	// without their own periodSeconds
	PeriodSeconds float64 `json:"periodSeconds" yaml:"periodSeconds"`
}

// Event describes one scripted log call, optionally repeated.
type Event struct {
	// Level: Severity level name, parsed case-insensitively ("debug".."fatal")
	Level string `json:"level" yaml:"level"`
	// Message: Format template passed to the logger
	Message string `json:"message" yaml:"message"`
	// Args: Arguments rendered into the message template
	Args []any `json:"args,omitempty" yaml:"args,omitempty"`
	// Repeat: How many times the event fires; zero or omitted means once
	Repeat int `json:"repeat,omitempty" yaml:"repeat,omitempty"`
	// IntervalSeconds: Pause between repetitions, in seconds
	IntervalSeconds float64 `json:"intervalSeconds,omitempty" yaml:"intervalSeconds,omitempty"`
	// Throttle: Route the event through the throttled variant of its level
	Throttle bool `json:"throttle,omitempty" yaml:"throttle,omitempty"`
	// PeriodSeconds: Per-event throttle window override, in seconds
	PeriodSeconds *float64 `json:"periodSeconds,omitempty" yaml:"periodSeconds,omitempty"`
}

// detectScenarioFormat determines the scenario file format based on file extension.
// It supports .json, .yaml, and .yml extensions, with case-insensitive
// matching for cross-platform compatibility. Unknown extensions parse as JSON.
func detectScenarioFormat(path string) scenarioFormat {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return scenarioFormatYAML
	default:
		return scenarioFormatJSON
	}
}

// unmarshalScenario unmarshals scenario data based on the specified format.
//
// Parameters:
//   - data: Raw scenario file contents
//   - scenario: Pointer to Scenario struct to populate
//   - format: The scenario format (scenarioFormatJSON or scenarioFormatYAML)
//
// Returns:
//   - error: Any parsing error encountered during unmarshaling
func unmarshalScenario(data []byte, scenario *Scenario, format scenarioFormat) error {
	switch format {
	case scenarioFormatYAML:
		if err := yaml.Unmarshal(data, scenario); err != nil {
			return fmt.Errorf("failed to parse YAML scenario file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, scenario); err != nil {
			return fmt.Errorf("failed to parse JSON scenario file: %w", err)
		}
	}
	return nil
}

// Load reads, parses, and validates a scenario file.
//
// Parameters:
//   - path: Path to the scenario file
//     Supported formats: .json, .yaml, .yml
//
// Returns:
//   - A pointer to the loaded Scenario
//   - An error if the file cannot be read, parsed, or validated
//
// The file is read through the shared buffer pool, so loading does not
// allocate a throwaway intermediate slice per call.
func Load(path string) (*Scenario, error) {
	buf := gc.Default.Get()

	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario file: %w", err)
	}
	defer file.Close()

	if _, err := buf.ReadFrom(file); err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	scenario := &Scenario{}
	if err := unmarshalScenario(buf.Bytes(), scenario, detectScenarioFormat(path)); err != nil {
		return nil, err
	}

	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	return scenario, nil
}

// Validate checks the scenario for structural problems. It returns
// ErrNoEvents for an empty events list, an error wrapping ErrInvalidScenario
// for bad scenario-level settings, and an error wrapping ErrInvalidEvent for
// the first malformed event.
func (s *Scenario) Validate() error {
	if len(s.Events) == 0 {
		return ErrNoEvents
	}

	if s.Defaults.PeriodSeconds < 0 {
		return fmt.Errorf("defaults: negative periodSeconds %v: %w", s.Defaults.PeriodSeconds, ErrInvalidScenario)
	}

	for i := range s.Events {
		if err := s.Events[i].validate(); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
	}

	return nil
}

// validate checks a single event entry.
func (e *Event) validate() error {
	if e.Message == "" {
		return fmt.Errorf("missing message: %w", ErrInvalidEvent)
	}
	if _, err := logger.ParseLevel(e.Level); err != nil {
		return fmt.Errorf("invalid level %q: %w", e.Level, ErrInvalidEvent)
	}
	if e.Repeat < 0 {
		return fmt.Errorf("negative repeat %d: %w", e.Repeat, ErrInvalidEvent)
	}
	if e.IntervalSeconds < 0 {
		return fmt.Errorf("negative intervalSeconds %v: %w", e.IntervalSeconds, ErrInvalidEvent)
	}
	if e.PeriodSeconds != nil && *e.PeriodSeconds < 0 {
		return fmt.Errorf("negative periodSeconds %v: %w", *e.PeriodSeconds, ErrInvalidEvent)
	}
	return nil
}

// Count returns how many times the event fires. A zero or omitted repeat
// fires once.
func (e *Event) Count() int {
	if e.Repeat < 1 {
		return 1
	}
	return e.Repeat
}

// Interval returns the pause between repetitions.
func (e *Event) Interval() time.Duration {
	return secondsToDuration(e.IntervalSeconds)
}

// Period returns the throttle window for the event, falling back to the
// scenario default when the event does not carry its own.
func (e *Event) Period(defaults Defaults) time.Duration {
	if e.PeriodSeconds != nil {
		return secondsToDuration(*e.PeriodSeconds)
	}
	return secondsToDuration(defaults.PeriodSeconds)
}

// secondsToDuration converts a float seconds value, as written in scenario
// files, into a time.Duration.
func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
