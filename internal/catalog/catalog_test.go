package catalog

import (
	"context"
	"path/filepath"
	"testing"
)

func openTest(t *testing.T) *Catalog {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRecordAndList(t *testing.T) {
	c := openTest(t)
	ctx := context.Background()

	entries := []Entry{
		{RunID: "run-1", Kind: "arm", Origin: "1,1,1", Path: "arm.nbt"},
		{RunID: "run-1", Kind: "conveyor_pair", Origin: "0,0,0", Path: "pair_main.nbt"},
		{RunID: "run-2", Kind: "conveyor", Origin: "0,-63,0", Path: "conv.nbt"},
	}
	for _, e := range entries {
		if err := c.Record(ctx, e); err != nil {
			t.Fatalf("Record() failed: %v", err)
		}
	}

	got, err := c.List(ctx)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(got) != len(entries) {
		t.Fatalf("List() returned %d entries, want %d", len(got), len(entries))
	}

	for i, e := range entries {
		if got[i].RunID != e.RunID {
			t.Errorf("entry %d run_id = %q, want %q", i, got[i].RunID, e.RunID)
		}
		if got[i].Kind != e.Kind {
			t.Errorf("entry %d kind = %q, want %q", i, got[i].Kind, e.Kind)
		}
		if got[i].Origin != e.Origin {
			t.Errorf("entry %d origin = %q, want %q", i, got[i].Origin, e.Origin)
		}
		if got[i].Path != e.Path {
			t.Errorf("entry %d path = %q, want %q", i, got[i].Path, e.Path)
		}
		if got[i].CreatedAt == "" {
			t.Errorf("entry %d has empty created_at", i)
		}
	}
}

func TestListEmpty(t *testing.T) {
	c := openTest(t)

	got, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("List() on empty catalog returned %d entries", len(got))
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	c1, err := Open(path)
	if err != nil {
		t.Fatalf("first Open() failed: %v", err)
	}
	if err := c1.Record(context.Background(), Entry{RunID: "r", Kind: "arm", Origin: "0,0,0", Path: "a.nbt"}); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	c1.Close()

	c2, err := Open(path)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer c2.Close()

	got, err := c2.List(context.Background())
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("existing data lost on reopen: %d entries", len(got))
	}
}
