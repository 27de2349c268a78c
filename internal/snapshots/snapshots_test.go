package snapshots

import (
	"os"
	"path/filepath"
	"testing"

	"nba-recap-service/internal/domain/recaps"
)

func sampleDay() recaps.DayResponse {
	return recaps.DayResponse{
		Date: "2025-01-15",
		Featured: []recaps.GameRecord{
			{ID: "g1", Date: "2025-01-15", HomeTeam: "Boston Celtics", AwayTeam: "Los Angeles Lakers", HomeScore: 110, AwayScore: 105},
		},
		Others: []recaps.GameRecord{
			{ID: "g2", Date: "2025-01-15", HomeTeam: "Utah Jazz", AwayTeam: "Orlando Magic", HomeScore: 99, AwayScore: 92},
		},
	}
}

func TestWriteThenLoadDay(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base)
	if err := w.WriteDay(sampleDay()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got, err := NewFSStore(base).LoadDay("2025-01-15")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Date != "2025-01-15" {
		t.Fatalf("unexpected date %q", got.Date)
	}
	if len(got.Featured) != 1 || got.Featured[0].ID != "g1" {
		t.Fatalf("unexpected featured: %+v", got.Featured)
	}
	if len(got.Others) != 1 || got.Others[0].ID != "g2" {
		t.Fatalf("unexpected others: %+v", got.Others)
	}
}

func TestWriteDayRequiresDate(t *testing.T) {
	w := NewWriter(t.TempDir())
	if err := w.WriteDay(recaps.DayResponse{}); err == nil {
		t.Fatal("expected error for missing date")
	}
}

func TestWriteDayLeavesNoTempFile(t *testing.T) {
	base := t.TempDir()
	if err := NewWriter(base).WriteDay(sampleDay()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(base, "days"))
	if err != nil {
		t.Fatalf("readdir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "2025-01-15.json" {
		t.Fatalf("unexpected directory contents: %v", entries)
	}
}

func TestLoadDayMissingFile(t *testing.T) {
	if _, err := NewFSStore(t.TempDir()).LoadDay("2025-01-15"); err == nil {
		t.Fatal("expected error for missing snapshot")
	}
}

func TestLoadDayCorruptFile(t *testing.T) {
	base := t.TempDir()
	path := DayPath(base, "2025-01-15")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFSStore(base).LoadDay("2025-01-15"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestLoadDayFillsDate(t *testing.T) {
	base := t.TempDir()
	path := DayPath(base, "2025-01-15")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`{"featured":[],"others":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := NewFSStore(base).LoadDay("2025-01-15")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Date != "2025-01-15" {
		t.Fatalf("expected backfilled date, got %q", got.Date)
	}
}

func TestLoadDayEmptyDate(t *testing.T) {
	if _, err := NewFSStore(t.TempDir()).LoadDay(""); err == nil {
		t.Fatal("expected error for empty date")
	}
}

func TestDayPath(t *testing.T) {
	got := DayPath("data/snapshots", "2025-01-15")
	want := filepath.Join("data", "snapshots", "days", "2025-01-15.json")
	if got != want {
		t.Fatalf("DayPath = %q, want %q", got, want)
	}
}
