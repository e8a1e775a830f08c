package cache

import (
	"context"
	"testing"
)

func TestMemory_GetSet(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	if _, ok := c.Get(ctx, "county:85201"); ok {
		t.Fatal("expected miss on empty cache")
	}

	if err := c.Set(ctx, "county:85201", "Maricopa"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok := c.Get(ctx, "county:85201")
	if !ok || got != "Maricopa" {
		t.Errorf("get = %q,%v, want Maricopa,true", got, ok)
	}
}
