package store

import (
	"context"
	"testing"

	"github.com/brokerdesk/quote-engine/quote"
)

func TestMemory_CreateGetPut(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	rec, err := m.Create(ctx, quote.NewSession(nil))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("expected generated ID")
	}

	s := rec.Session
	s.Columns[0].Rate = "6.5"
	if _, err := m.Put(ctx, rec.ID, s); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := m.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Session.Columns[0].Rate != "6.5" {
		t.Errorf("rate = %q, want 6.5", got.Session.Columns[0].Rate)
	}
}

func TestMemory_GetReturnsIsolatedCopy(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	rec, _ := m.Create(ctx, quote.NewSession([]string{"s4"}))

	// Mutate the returned copy without a Put.
	got, _ := m.Get(ctx, rec.ID)
	got.Session.Columns[0].Rate = "9.9"
	got.Session.ThirdParty = got.Session.ThirdParty.WithValue("s4", 0, "9999")

	// The stored value must be unaffected: whole-value replacement only.
	again, _ := m.Get(ctx, rec.ID)
	if again.Session.Columns[0].Rate != "" {
		t.Error("stored session leaked a column mutation")
	}
	if again.Session.ThirdParty.Value("s4", 0) != "" {
		t.Error("stored session leaked a service-value mutation")
	}
}

func TestMemory_NotFoundAndDelete(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if _, err := m.Get(ctx, "q-999999"); err != ErrNotFound {
		t.Errorf("get unknown: err = %v, want ErrNotFound", err)
	}
	if _, err := m.Put(ctx, "q-999999", quote.NewSession(nil)); err != ErrNotFound {
		t.Errorf("put unknown: err = %v, want ErrNotFound", err)
	}

	rec, _ := m.Create(ctx, quote.NewSession(nil))
	if err := m.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := m.Get(ctx, rec.ID); err != ErrNotFound {
		t.Error("session should be gone after delete")
	}
	// Deleting twice is fine.
	if err := m.Delete(ctx, rec.ID); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestMemory_ListAndReset(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.Create(ctx, quote.NewSession(nil))
	m.Create(ctx, quote.NewSession(nil))

	recs, _ := m.List(ctx)
	if len(recs) != 2 {
		t.Fatalf("len = %d, want 2", len(recs))
	}
	if recs[0].ID >= recs[1].ID {
		t.Error("list should be ordered by ID")
	}

	m.Reset(ctx)
	recs, _ = m.List(ctx)
	if len(recs) != 0 {
		t.Error("reset should drop all sessions")
	}
}
