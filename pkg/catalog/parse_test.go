package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseQuotedComma(t *testing.T) {
	text := "id,nameKo,price,group\n1,기본곰,\"10,000\",A\n2,하치와레,5000,A"

	got, stats := Parse(text)
	want := Snapshot{
		{"id": "1", "nameKo": "기본곰", "price": "10,000", "group": "A"},
		{"id": "2", "nameKo": "하치와레", "price": "5000", "group": "A"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected records (-want +got):\n%s", diff)
	}
	if stats != (ParseStats{Rows: 2}) {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestParseEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  Snapshot
		stats ParseStats
	}{{
		name: "empty input",
		text: "",
		want: Snapshot{},
	}, {
		name: "header only",
		text: "id,nameKo\n",
		want: Snapshot{},
	}, {
		name:  "trailing blank lines",
		text:  "id,nameKo\n1,a\n\n\n",
		want:  Snapshot{{"id": "1", "nameKo": "a"}},
		stats: ParseStats{Rows: 1},
	}, {
		name:  "crlf line endings",
		text:  "id,nameKo\r\n1,\"a\"\r\n2,b\r\n",
		want:  Snapshot{{"id": "1", "nameKo": "a"}, {"id": "2", "nameKo": "b"}},
		stats: ParseStats{Rows: 2},
	}, {
		name:  "short row skipped",
		text:  "id,nameKo,price\n1,a\n2,b,300",
		want:  Snapshot{{"id": "2", "nameKo": "b", "price": "300"}},
		stats: ParseStats{Rows: 2, Skipped: 1},
	}, {
		name:  "missing id dropped",
		text:  "id,nameKo\n,a\n2,b",
		want:  Snapshot{{"id": "2", "nameKo": "b"}},
		stats: ParseStats{Rows: 2, MissingID: 1},
	}, {
		name:  "extra columns ignored",
		text:  "id,nameKo\n1,a,extra",
		want:  Snapshot{{"id": "1", "nameKo": "a"}},
		stats: ParseStats{Rows: 1},
	}, {
		name:  "byte order mark",
		text:  "\ufeffid,nameKo\n1,a",
		want:  Snapshot{{"id": "1", "nameKo": "a"}},
		stats: ParseStats{Rows: 1},
	}, {
		name:  "fields trimmed",
		text:  " id , nameKo \n 1 ,  spaced name  ",
		want:  Snapshot{{"id": "1", "nameKo": "spaced name"}},
		stats: ParseStats{Rows: 1},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, stats := Parse(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("unexpected records (-want +got):\n%s", diff)
			}
			if stats != tt.stats {
				t.Fatalf("unexpected stats: got %+v, want %+v", stats, tt.stats)
			}
		})
	}
}

func TestParseCountsAddUp(t *testing.T) {
	text := "id,nameKo,price\n1,a,1\n2,b\n,c,3\n4,d,4\n5"
	got, stats := Parse(text)
	if stats.Rows != 5 {
		t.Fatalf("expected 5 data rows, got %d", stats.Rows)
	}
	if len(got)+stats.Skipped+stats.MissingID != stats.Rows {
		t.Fatalf("counts do not add up: %d records, %+v", len(got), stats)
	}
}

func TestParseDeterministic(t *testing.T) {
	text := "id,nameKo,group\n3,c,B\n1,a,A\n2,b,A"
	first := ParseCSV(text)
	second := ParseCSV(text)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("parse is not deterministic:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"3", "1", "2"}, first.IDs()); diff != "" {
		t.Fatalf("order not preserved:\n%s", diff)
	}
}

func TestSplitRow(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{line: `a,b,c`, want: []string{"a", "b", "c"}},
		{line: `a,,c`, want: []string{"a", "", "c"}},
		{line: `,b`, want: []string{"", "b"}},
		{line: `a,`, want: []string{"a", ""}},
		{line: `"10,000",x`, want: []string{"10,000", "x"}},
		{line: `"say ""hi""",x`, want: []string{`say "hi"`, "x"}},
		{line: `""`, want: []string{""}},
		{line: `"a"junk,b`, want: []string{"a", "b"}},
		{line: `"open,b`, want: []string{"open", "b"}},
		{line: `plain "quote",b`, want: []string{`plain "quote`, "b"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, SplitRow(tt.line)); diff != "" {
			t.Fatalf("SplitRow(%q) (-want +got):\n%s", tt.line, diff)
		}
	}
}

func TestSnapshotFind(t *testing.T) {
	s := ParseCSV("id,nameKo\n1,a\n2,b")
	r, ok := s.Find("2")
	if !ok || r.Name() != "b" {
		t.Fatalf("expected to find record 2, got %v %v", r, ok)
	}
	if _, ok := s.Find("9"); ok {
		t.Fatalf("did not expect to find record 9")
	}
}
