package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Summary aggregates the results of a scenario run.
type Summary struct {
	Name      string
	Results   []*Result
	PassCount int
	FailCount int
	Duration  time.Duration
}

// Summarize counts passed and failed scenarios.
func Summarize(name string, results []*Result) *Summary {
	s := &Summary{Name: name, Results: results}
	for _, r := range results {
		if r.Passed {
			s.PassCount++
		} else {
			s.FailCount++
		}
		s.Duration += r.Duration
	}
	return s
}

// Reporter formats scenario results.
type Reporter interface {
	ReportSummary(s *Summary)
	ReportResult(r *Result)
}

// TextReporter writes human-readable reports.
type TextReporter struct {
	writer  io.Writer
	verbose bool
}

// NewTextReporter creates a text reporter. Verbose output lists every step
// and expectation.
func NewTextReporter(w io.Writer, verbose bool) *TextReporter {
	return &TextReporter{writer: w, verbose: verbose}
}

// ReportSummary reports all results followed by totals.
func (r *TextReporter) ReportSummary(s *Summary) {
	fmt.Fprintf(r.writer, "\n=== %s ===\n", s.Name)
	fmt.Fprintf(r.writer, "Duration: %s\n\n", s.Duration.Round(time.Millisecond))

	for _, res := range s.Results {
		r.ReportResult(res)
	}

	fmt.Fprintf(r.writer, "\n--- Summary ---\n")
	fmt.Fprintf(r.writer, "Total:   %d\n", len(s.Results))
	fmt.Fprintf(r.writer, "Passed:  %d\n", s.PassCount)
	fmt.Fprintf(r.writer, "Failed:  %d\n", s.FailCount)
}

// ReportResult reports a single scenario.
func (r *TextReporter) ReportResult(res *Result) {
	status := "PASS"
	if !res.Passed {
		status = "FAIL"
	}
	fmt.Fprintf(r.writer, "[%s] %s - %s (%s)\n",
		status, res.Scenario.ID, res.Scenario.Name, res.Duration.Round(time.Millisecond))

	if !res.Passed && res.Error != nil {
		fmt.Fprintf(r.writer, "       Error: %v\n", res.Error)
	}

	if !r.verbose {
		return
	}
	for _, sr := range res.StepResults {
		stepStatus := "PASS"
		if !sr.Passed {
			stepStatus = "FAIL"
		}
		fmt.Fprintf(r.writer, "    [%s] Step %d: %s\n", stepStatus, sr.StepIndex+1, sr.Step.Action)
		if sr.Error != nil {
			fmt.Fprintf(r.writer, "           Error: %v\n", sr.Error)
		}
		for _, er := range sr.ExpectResults {
			expStatus := "OK"
			if !er.Passed {
				expStatus = "FAILED"
			}
			fmt.Fprintf(r.writer, "           [%s] %s: %s\n", expStatus, er.Key, er.Message)
		}
	}
}

// JSONReporter writes one JSON document per report.
type JSONReporter struct {
	writer io.Writer
	pretty bool
}

// NewJSONReporter creates a JSON reporter.
func NewJSONReporter(w io.Writer, pretty bool) *JSONReporter {
	return &JSONReporter{writer: w, pretty: pretty}
}

type jsonSummary struct {
	Name      string       `json:"name"`
	Duration  string       `json:"duration"`
	Total     int          `json:"total"`
	Passed    int          `json:"passed"`
	Failed    int          `json:"failed"`
	Scenarios []jsonResult `json:"scenarios"`
}

type jsonResult struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Status   string     `json:"status"`
	Duration string     `json:"duration"`
	Error    string     `json:"error,omitempty"`
	Steps    []jsonStep `json:"steps,omitempty"`
}

type jsonStep struct {
	Index   int          `json:"index"`
	Action  string       `json:"action"`
	Status  string       `json:"status"`
	Error   string       `json:"error,omitempty"`
	Expects []jsonExpect `json:"expects,omitempty"`
}

type jsonExpect struct {
	Key      string `json:"key"`
	Passed   bool   `json:"passed"`
	Expected any    `json:"expected"`
	Actual   any    `json:"actual"`
	Message  string `json:"message"`
}

// ReportSummary reports all results as one document.
func (r *JSONReporter) ReportSummary(s *Summary) {
	js := jsonSummary{
		Name:      s.Name,
		Duration:  s.Duration.Round(time.Millisecond).String(),
		Total:     len(s.Results),
		Passed:    s.PassCount,
		Failed:    s.FailCount,
		Scenarios: make([]jsonResult, 0, len(s.Results)),
	}
	for _, res := range s.Results {
		js.Scenarios = append(js.Scenarios, toJSON(res))
	}
	r.write(js)
}

// ReportResult reports a single scenario.
func (r *JSONReporter) ReportResult(res *Result) {
	r.write(toJSON(res))
}

func toJSON(res *Result) jsonResult {
	jr := jsonResult{
		ID:       res.Scenario.ID,
		Name:     res.Scenario.Name,
		Status:   status(res.Passed),
		Duration: res.Duration.Round(time.Millisecond).String(),
	}
	if res.Error != nil {
		jr.Error = res.Error.Error()
	}
	for _, sr := range res.StepResults {
		js := jsonStep{Index: sr.StepIndex, Action: sr.Step.Action, Status: status(sr.Passed)}
		if sr.Error != nil {
			js.Error = sr.Error.Error()
		}
		for _, er := range sr.ExpectResults {
			js.Expects = append(js.Expects, jsonExpect{
				Key:      er.Key,
				Passed:   er.Passed,
				Expected: er.Expected,
				Actual:   er.Actual,
				Message:  er.Message,
			})
		}
		jr.Steps = append(jr.Steps, js)
	}
	return jr
}

func status(passed bool) string {
	if passed {
		return "passed"
	}
	return "failed"
}

func (r *JSONReporter) write(v any) {
	var data []byte
	var err error
	if r.pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		fmt.Fprintf(r.writer, `{"error": "failed to marshal: %s"}`+"\n", err)
		return
	}
	fmt.Fprintln(r.writer, string(data))
}
