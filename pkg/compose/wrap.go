package compose

import "strings"

// WrapLines breaks text into lines no wider than width using a greedy fill.
// Words are separated by single spaces and every line keeps the trailing
// space it was built with. The first word always stays on the first line,
// even when it alone is wider than width.
func WrapLines(text string, width float64, measure func(string) float64) []string {
	words := strings.Split(text, " ")
	var lines []string
	line := ""
	for n, word := range words {
		candidate := line + word + " "
		if measure(candidate) > width && n > 0 {
			lines = append(lines, line)
			line = word + " "
			continue
		}
		line = candidate
	}
	return append(lines, line)
}
