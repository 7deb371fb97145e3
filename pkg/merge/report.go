package merge

import (
	"time"

	"github.com/agentstation/utc"
	"github.com/google/uuid"
)

// Report describes a completed Run.
type Report struct {
	RunID      string   `json:"run_id" yaml:"run_id"`
	Mode       string   `json:"mode" yaml:"mode"`
	Source     string   `json:"source" yaml:"source"`
	Target     string   `json:"target" yaml:"target"`
	Output     string   `json:"output" yaml:"output"`
	Filter     string   `json:"filter,omitempty" yaml:"filter,omitempty"`
	Override   bool     `json:"override" yaml:"override"`
	Strict     bool     `json:"strict" yaml:"strict"`
	StartedAt  utc.Time `json:"started_at" yaml:"started_at"`
	FinishedAt utc.Time `json:"finished_at" yaml:"finished_at"`
	Stats      *Stats   `json:"stats" yaml:"stats"`
}

func newReport(e *Engine, sourcePath, targetPath string) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Mode:      e.mode.Name,
		Source:    sourcePath,
		Target:    targetPath,
		Output:    OutputPath(targetPath, e.mode),
		Filter:    e.filter,
		Override:  e.override,
		Strict:    e.strict,
		StartedAt: utc.Now(),
	}
}

func (r *Report) finish(stats *Stats) {
	r.Stats = stats
	r.FinishedAt = utc.Now()
}

// Duration returns how long the run took.
func (r *Report) Duration() time.Duration {
	return r.FinishedAt.Time.Sub(r.StartedAt.Time)
}
