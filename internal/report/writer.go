package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// New creates a report for one run.
func New(algorithm string, workers int) *Report {
	return &Report{
		Version:     SupportedReportVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Algorithm:   algorithm,
		Workers:     workers,
	}
}

// Finish fills in the derived fields once Input and Output are set.
func (r *Report) Finish(elapsed time.Duration) {
	r.ElapsedMS = float64(elapsed.Microseconds()) / 1000
	r.ColorDrift = Drift(r.Input, r.Output)
}

// WriteJSON serializes the report to path.
func WriteJSON(r *Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// ReadJSON loads a report written by WriteJSON. Unknown fields are ignored.
func ReadJSON(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	if r.Version != SupportedReportVersion {
		return nil, fmt.Errorf("unsupported report version: %d", r.Version)
	}
	return &r, nil
}
