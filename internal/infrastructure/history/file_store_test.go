package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/doeshing/spinit/internal/domain"
)

func sampleRecords(base time.Time) []domain.RunRecord {
	return []domain.RunRecord{
		{Timestamp: base, Message: "Building", Command: "make build", ExitCode: 0, Success: true, DurationMS: 1200},
		{Timestamp: base.Add(time.Second), Message: "Testing", Command: "make test", ExitCode: 2, Success: false, DurationMS: 900},
		{Timestamp: base.Add(2 * time.Second), Message: "Linting", Command: "make lint", ExitCode: 0, Success: true, DurationMS: 300},
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "history.jsonl"))
	base := time.Now().UTC().Truncate(time.Second)

	for _, rec := range sampleRecords(base) {
		if err := store.Save(rec); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	records, err := store.Records(0, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	// Newest first.
	if records[0].Command != "make lint" || records[2].Command != "make build" {
		t.Fatalf("unexpected order: %q then %q", records[0].Command, records[2].Command)
	}
	if records[1].Success || records[1].ExitCode != 2 {
		t.Fatalf("failure record mangled: %+v", records[1])
	}
}

func TestFileStoreLimitAndSearch(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "history.jsonl"))
	for _, rec := range sampleRecords(time.Now()) {
		if err := store.Save(rec); err != nil {
			t.Fatal(err)
		}
	}

	limited, err := store.Records(2, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("got %d records, want 2", len(limited))
	}

	filtered, err := store.Records(0, "test")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(filtered) != 1 || filtered[0].Command != "make test" {
		t.Fatalf("search results wrong: %+v", filtered)
	}
}

func TestFileStoreClear(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "history.jsonl"))
	if err := store.Save(sampleRecords(time.Now())[0]); err != nil {
		t.Fatal(err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	records, err := store.Records(0, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("got %d records after clear, want 0", len(records))
	}

	// Clearing an already empty store is fine.
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear() error = %v", err)
	}
}

func TestFileStoreEmptyIsNotAnError(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "history.jsonl"))

	records, err := store.Records(0, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("got %d records, want 0", len(records))
	}
}
