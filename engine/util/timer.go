package util

import (
	"fmt"
	"strings"
	"time"
)

// StageTiming accumulates the run times of one named stage.
type StageTiming struct {
	Name  string
	Last  time.Duration
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
	Count int64
}

func (s *StageTiming) Average() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

func (s *StageTiming) String() string {
	return fmt.Sprintf("%s runs: %d last: %s avg: %s min: %s max: %s", s.Name, s.Count, s.Last, s.Average(), s.Min, s.Max)
}

// Timer measures named stages. It is not safe for concurrent use.
type Timer struct {
	stages     map[string]*StageTiming
	stageNames []string
}

func NewTimer() *Timer {
	return &Timer{
		stages: make(map[string]*StageTiming),
	}
}

// Stage returns the timing of a stage, nil if it never ran.
func (t *Timer) Stage(name string) *StageTiming {
	return t.stages[name]
}

// Start begins measuring a stage, the returned func stops the measurement.
func (t *Timer) Start(name string) func() time.Duration {
	stage, ok := t.stages[name]
	if !ok {
		t.stageNames = append(t.stageNames, name)
		stage = &StageTiming{Name: name}
		t.stages[name] = stage
	}
	start := time.Now()
	return func() time.Duration {
		elapsed := time.Since(start)
		stage.Last = elapsed
		stage.Total += elapsed
		if stage.Count == 0 || elapsed < stage.Min {
			stage.Min = elapsed
		}
		if elapsed > stage.Max {
			stage.Max = elapsed
		}
		stage.Count++
		return elapsed
	}
}

// String lists the stages in the order they first ran.
func (t *Timer) String() string {
	lines := make([]string, 0, len(t.stageNames))
	for _, name := range t.stageNames {
		lines = append(lines, t.stages[name].String())
	}
	return strings.Join(lines, "\n")
}
