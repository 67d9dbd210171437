package domain

import (
	"context"
	"time"
)

// Run is a single dispatch of the test suite, recorded for auditing.
// Env holds the redacted snapshot of the exported allow-list; raw secret
// values are never stored.
type Run struct {
	ID         string
	Command    string
	Args       []string
	WorkDir    string
	Env        map[string]string
	StartedAt  time.Time
	FinishedAt time.Time
	ExitCode   int
}

type RunRepository interface {
	Insert(ctx context.Context, run *Run) error
	Update(ctx context.Context, run *Run) error
	Get(ctx context.Context, id string) (*Run, error)
	List(ctx context.Context, limit int) ([]*Run, error)
}
