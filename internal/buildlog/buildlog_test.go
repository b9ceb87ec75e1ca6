package buildlog

import (
	"path/filepath"
	"testing"
	"time"
)

func TestOpenCreatesSchema(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "build.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	var count int
	err = db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='builds'`).Scan(&count)
	if err != nil {
		t.Fatalf("checking schema: %v", err)
	}
	if count != 1 {
		t.Error("Open should create the builds table")
	}
}

func TestRecordAndRecent(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "build.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	if _, err := db.Record("phase1", 12, 2048, 150*time.Millisecond, now); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if _, err := db.Record("phase2", 36, 1082565, 4*time.Second, now.Add(time.Minute)); err != nil {
		t.Fatalf("Record: %v", err)
	}

	runs, err := db.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Recent returned %d runs, want 2", len(runs))
	}
	if runs[0].Phase != "phase2" {
		t.Errorf("Recent()[0].Phase = %q, want phase2 (most recent first)", runs[0].Phase)
	}
}
