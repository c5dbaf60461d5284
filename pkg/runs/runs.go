// Package runs records the frame documents served by the HTTP API.
//
// Every POST /v1/frames response carries a run id (the X-Run-Id header and
// the document's run_id field). A [Store] keeps a small summary of each run
// under that id so clients can look it up later. [MemoryStore] holds the most
// recent runs in process; [MongoStore] persists them in MongoDB.
package runs

import (
	"context"
	"time"

	"github.com/01wneo/RollingText/pkg/errors"
)

// Run summarises one frames request.
type Run struct {
	ID         string    `json:"id" bson:"_id"`
	From       string    `json:"from" bson:"from"`
	To         string    `json:"to" bson:"to"`
	Strategy   string    `json:"strategy" bson:"strategy"`
	Easing     string    `json:"easing" bson:"easing"`
	FPS        int       `json:"fps" bson:"fps"`
	DurationMS int64     `json:"duration_ms" bson:"duration_ms"`
	Frames     int       `json:"frames" bson:"frames"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// Store saves and looks up runs by id.
type Store interface {
	// Save records r. Saving an id twice replaces the earlier run.
	Save(ctx context.Context, r Run) error

	// Get returns the run with id, or a NOT_FOUND error.
	Get(ctx context.Context, id string) (Run, error)

	// Close releases resources held by the store.
	Close(ctx context.Context) error
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeNotFound, "run %q not found", id)
}
