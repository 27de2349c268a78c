package records

import (
	"testing"

	"nba-recap-service/internal/teamnames"
)

func TestExtractRecordEnglishTitle(t *testing.T) {
	names := teamnames.Hebrew()
	title := "Lakers (23-19) 110 - 105 Celtics (30-12)"

	tests := []struct {
		name string
		team string
		want string
	}{
		{name: "lakers via nickname", team: "Los Angeles Lakers", want: "23-19"},
		{name: "celtics via nickname", team: "Boston Celtics", want: "30-12"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractRecord(title, tc.team, names)
			if !ok {
				t.Fatalf("expected record for %s", tc.team)
			}
			if got != tc.want {
				t.Fatalf("expected %s got %s", tc.want, got)
			}
		})
	}
}

func TestExtractRecordFullEnglishName(t *testing.T) {
	title := "Boston Celtics (30-12) hold off Utah Jazz (20-22)"
	got, ok := ExtractRecord(title, "Boston Celtics", teamnames.Hebrew())
	if !ok || got != "30-12" {
		t.Fatalf("expected 30-12, got %q (ok=%v)", got, ok)
	}

	got, ok = ExtractRecord(title, "Utah Jazz", teamnames.Hebrew())
	if !ok || got != "20-22" {
		t.Fatalf("expected 20-22, got %q (ok=%v)", got, ok)
	}
}

func TestExtractRecordHebrewTitle(t *testing.T) {
	names := teamnames.Hebrew()
	title := "בוסטון סלטיקס (30-12) ניצחו את לוס אנג'לס לייקרס (23-19)"

	got, ok := ExtractRecord(title, "Boston Celtics", names)
	if !ok || got != "30-12" {
		t.Fatalf("expected 30-12, got %q (ok=%v)", got, ok)
	}

	// The table spells the Lakers with a geresh; the title uses a plain
	// apostrophe. Normalization must make them equal.
	got, ok = ExtractRecord(title, "Los Angeles Lakers", names)
	if !ok || got != "23-19" {
		t.Fatalf("expected 23-19, got %q (ok=%v)", got, ok)
	}
}

func TestExtractRecordFuzzyWithinThreshold(t *testing.T) {
	// One substituted character in the Hebrew nickname phrase.
	title := "בוסטון סלטיקש (30-12) בדרך לניצחון"
	got, ok := ExtractRecord(title, "Boston Celtics", teamnames.Hebrew())
	if !ok || got != "30-12" {
		t.Fatalf("expected fuzzy match 30-12, got %q (ok=%v)", got, ok)
	}
}

func TestExtractRecordFuzzyBeyondThreshold(t *testing.T) {
	// Four substituted characters is past the distance-3 cutoff.
	title := "בוסטון סלXXXX (30-12) בדרך לניצחון"
	if got, ok := ExtractRecord(title, "Boston Celtics", teamnames.Hebrew()); ok {
		t.Fatalf("expected no match, got %q", got)
	}
}

func TestExtractRecordMalformedInputs(t *testing.T) {
	names := teamnames.Hebrew()
	tests := []struct {
		name  string
		title string
		team  string
	}{
		{name: "empty title", title: "", team: "Boston Celtics"},
		{name: "empty team", title: "Celtics (30-12)", team: ""},
		{name: "no record in title", title: "Celtics beat Lakers", team: "Boston Celtics"},
		{name: "unknown team without mapping", title: "מכבי תל אביב (10-2)", team: "Maccabi Tel Aviv"},
		{name: "arbitrary text", title: "!!!???", team: "Boston Celtics"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got, ok := ExtractRecord(tc.title, tc.team, names); ok {
				t.Fatalf("expected no match, got %q", got)
			}
		})
	}
}

func TestParseTitleRecords(t *testing.T) {
	recs, ok := ParseTitleRecords("Lakers (23-19) 110 - 105 Celtics (30-12)")
	if !ok {
		t.Fatalf("expected two records")
	}
	if recs[0].Wins != 23 || recs[0].Losses != 19 {
		t.Fatalf("unexpected first record: %+v", recs[0])
	}
	if recs[1].Wins != 30 || recs[1].Losses != 12 {
		t.Fatalf("unexpected second record: %+v", recs[1])
	}
}

func TestParseTitleRecordsColonSeparator(t *testing.T) {
	recs, ok := ParseTitleRecords("הוקס (5:3) מול באקס (6:2)")
	if !ok {
		t.Fatalf("expected two records")
	}
	if recs[0].Wins != 5 || recs[0].Losses != 3 || recs[1].Wins != 6 || recs[1].Losses != 2 {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestParseTitleRecordsTooFew(t *testing.T) {
	tests := []string{
		"",
		"Lakers beat Celtics",
		"Lakers (23-19) won big",
	}
	for _, title := range tests {
		if _, ok := ParseTitleRecords(title); ok {
			t.Fatalf("expected failure for %q", title)
		}
	}
}

func TestWinPct(t *testing.T) {
	tests := []struct {
		rec  TeamRecord
		want float64
	}{
		{rec: TeamRecord{Wins: 30, Losses: 10}, want: 0.75},
		{rec: TeamRecord{Wins: 0, Losses: 0}, want: 0},
		{rec: TeamRecord{Wins: 0, Losses: 10}, want: 0},
		{rec: TeamRecord{Wins: 10, Losses: 0}, want: 1},
	}
	for _, tc := range tests {
		if got := tc.rec.WinPct(); got != tc.want {
			t.Fatalf("WinPct(%+v) = %v, want %v", tc.rec, got, tc.want)
		}
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{a: "", b: "", want: 0},
		{a: "", b: "abc", want: 3},
		{a: "abc", b: "", want: 3},
		{a: "abc", b: "abc", want: 0},
		{a: "kitten", b: "sitting", want: 3},
		{a: "סלטיקס", b: "סלטיקש", want: 1},
	}
	for _, tc := range tests {
		if got := Levenshtein(tc.a, tc.b); got != tc.want {
			t.Fatalf("Levenshtein(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
