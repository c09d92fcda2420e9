package catalog

import (
	"strings"

	"go.uber.org/zap"

	"tableflip.dev/nongdam/pkg/logging"
)

// ParseStats counts what happened to the data rows of one parse.
// Rows == records + Skipped + MissingID.
type ParseStats struct {
	Rows      int
	Skipped   int
	MissingID int
}

// ParseCSV parses sheet text into records. See Parse.
func ParseCSV(text string) Snapshot {
	records, _ := Parse(text)
	return records
}

// Parse turns published sheet CSV into records. The first non-blank line is
// the header; every following non-blank line is one data row. Quoted fields
// may hold commas and doubled quotes but never a line break.
//
// Rows with fewer columns than the header are skipped and rows without an id
// are dropped. Neither is an error.
func Parse(text string) (Snapshot, ParseStats) {
	var stats ParseStats
	log := logging.Named("catalog")

	text = strings.TrimPrefix(text, "\ufeff")
	lines := strings.Split(text, "\n")

	var header []string
	records := make(Snapshot, 0, len(lines))
	for n, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		cols := SplitRow(line)
		if header == nil {
			header = cols
			continue
		}

		stats.Rows++
		if len(cols) < len(header) {
			stats.Skipped++
			log.Debug("skipping short row",
				zap.Int("line", n+1),
				zap.Int("columns", len(cols)),
				zap.Int("want", len(header)))
			continue
		}

		r := make(Record, len(header))
		for i, name := range header {
			value := ""
			if i < len(cols) {
				value = cols[i]
			}
			r[name] = value
		}
		if r.ID() == "" {
			stats.MissingID++
			continue
		}
		records = append(records, r)
	}
	return records, stats
}

// SplitRow splits one CSV line into trimmed column values.
//
// A column that starts with a quote extends to the last quote that closes a
// run of plain text and doubled quotes; anything between that quote and the
// next comma is discarded. A quote that never closes makes the column plain
// text up to the next comma.
func SplitRow(line string) []string {
	var cols []string
	pos := 0
	for {
		var raw string
		if end := quotedEnd(line, pos); end > 0 {
			raw = line[pos:end]
			pos = end
			if next := strings.IndexByte(line[pos:], ','); next >= 0 {
				pos += next
			} else {
				pos = len(line)
			}
		} else {
			next := strings.IndexByte(line[pos:], ',')
			if next < 0 {
				next = len(line) - pos
			}
			raw = line[pos : pos+next]
			pos += next
		}
		cols = append(cols, cleanField(raw))

		if pos >= len(line) {
			return cols
		}
		// line[pos] is the separating comma.
		pos++
	}
}

// quotedEnd returns the index just past the closing quote of a quoted field
// starting at pos, or -1 when there is none. The longest valid closing quote
// wins.
func quotedEnd(line string, pos int) int {
	if pos >= len(line) || line[pos] != '"' {
		return -1
	}
	end := -1
	for j := pos + 1; j < len(line); {
		if line[j] != '"' {
			j++
			continue
		}
		end = j + 1
		if j+1 < len(line) && line[j+1] == '"' {
			j += 2
			continue
		}
		break
	}
	return end
}

func cleanField(raw string) string {
	raw = strings.TrimPrefix(raw, `"`)
	raw = strings.TrimSuffix(raw, `"`)
	raw = strings.ReplaceAll(raw, `""`, `"`)
	return strings.TrimSpace(raw)
}
