package runs

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/01wneo/RollingText/pkg/errors"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)
	defer s.Close(ctx)

	want := Run{ID: "a", From: "19", To: "23", FPS: 30, Frames: 23, CreatedAt: time.Unix(0, 0)}
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := s.Get(ctx, "a")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got != want {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}

	_, err = s.Get(ctx, "missing")
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Get(missing) error = %v, want NOT_FOUND", err)
	}
}

func TestMemoryStoreReplace(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(2)

	_ = s.Save(ctx, Run{ID: "a", To: "1"})
	_ = s.Save(ctx, Run{ID: "a", To: "2"})
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	got, _ := s.Get(ctx, "a")
	if got.To != "2" {
		t.Errorf("To = %q, want replaced value 2", got.To)
	}
}

func TestMemoryStoreEvictsOldest(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(2)

	for _, id := range []string{"a", "b", "c"} {
		_ = s.Save(ctx, Run{ID: id})
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if _, err := s.Get(ctx, "a"); err == nil {
		t.Error("oldest run should be evicted")
	}
	for _, id := range []string{"b", "c"} {
		if _, err := s.Get(ctx, id); err != nil {
			t.Errorf("Get(%q) error: %v", id, err)
		}
	}
}

func TestMemoryStoreConcurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(50)

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := fmt.Sprint(i)
			_ = s.Save(ctx, Run{ID: id})
			_, _ = s.Get(ctx, id)
		}()
	}
	wg.Wait()

	if s.Len() != 50 {
		t.Errorf("Len() = %d, want 50", s.Len())
	}
}

func TestNewMongoStoreInvalidURI(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := NewMongoStore(ctx, "postgres://localhost", "rollingtext"); err == nil {
		t.Error("expected error for non-mongodb uri")
	}
}
