// Package scenario runs YAML scenarios against the gateway settings form.
//
// A scenario seeds a gateway store, opens a settings form and drives it
// step by step: changing fields, expanding sections, submitting and
// deleting, with expectations on displayed values, the delay warning, the
// rendered page and the stored state.
package scenario

import (
	"strconv"
	"time"
)

// Scenario is a single scenario loaded from YAML.
type Scenario struct {
	// ID is the unique scenario identifier (e.g., "GS-001").
	ID string `yaml:"id"`

	// Name is a human-readable name.
	Name string `yaml:"name"`

	// Description explains what the scenario checks.
	Description string `yaml:"description"`

	// Delays overrides the configured delay bounds, e.g. "1s" or "530ms".
	Delays *Delays `yaml:"delays,omitempty"`

	// Seed lists gateways stored before the first step. Each entry uses the
	// backend's JSON field names.
	Seed []map[string]any `yaml:"seed"`

	// Steps are the actions to execute in order.
	Steps []Step `yaml:"steps"`

	// Tags for categorizing scenarios.
	Tags []string `yaml:"tags,omitempty"`
}

// Delays overrides delay bounds.
type Delays struct {
	Minimum string `yaml:"minimum,omitempty"`
	Default string `yaml:"default,omitempty"`
}

// Step is a single action in a scenario.
type Step struct {
	// Action is the action to perform (e.g., "open", "change", "expect_warning").
	Action string `yaml:"action"`

	// Params are parameters for the action.
	Params map[string]any `yaml:"params,omitempty"`

	// Expect defines expected outcomes after the action.
	Expect map[string]any `yaml:"expect,omitempty"`

	// Description explains what this step does.
	Description string `yaml:"description,omitempty"`
}

// Result is the outcome of a scenario.
type Result struct {
	Scenario    *Scenario
	Passed      bool
	Error       error
	StepResults []*StepResult
	Duration    time.Duration
}

// StepResult is the outcome of a single step.
type StepResult struct {
	Step          *Step
	StepIndex     int
	Passed        bool
	Error         error
	ExpectResults []*ExpectResult
	Duration      time.Duration
}

// ExpectResult is the outcome of a single expectation.
type ExpectResult struct {
	Key      string
	Expected any
	Actual   any
	Passed   bool
	Message  string
}

// LoadError provides details about a scenario loading error.
type LoadError struct {
	// File is the path to the file that failed to load.
	File string

	// Line is the line number where the error occurred (0 if unknown).
	Line int

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if e.File == "" {
		return msg
	}
	if e.Line > 0 {
		return e.File + ":" + strconv.Itoa(e.Line) + ": " + msg
	}
	return e.File + ": " + msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
