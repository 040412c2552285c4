package grep

import (
	"regexp"

	"github.com/mattn/go-runewidth"
)

// matchedLineRE captures the path:lnum:col: head of a grep line.
var matchedLineRE = regexp.MustCompile(`^(.*?):(\d+):(\d+):`)

// context cells kept visible after the location head when trimming.
const tailContext = 10

// TruncateMatched trims the head of overlong path:lnum:col: lines so the
// matched text stays inside winwidth display cells. Lines without the
// location head, or already narrow enough, pass through unchanged.
func TruncateMatched(lines []string, winwidth int) []string {
	if winwidth <= 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = truncateLine(line, winwidth)
	}
	return out
}

func truncateLine(line string, winwidth int) string {
	loc := matchedLineRE.FindStringIndex(line)
	if loc == nil {
		return line
	}

	lineWidth := runewidth.StringWidth(line)
	if lineWidth <= winwidth {
		return line
	}

	headWidth := runewidth.StringWidth(line[:loc[1]])
	var cut int
	switch {
	case headWidth > winwidth:
		// Even the location head overflows; keep the tail of the line.
		cut = lineWidth - winwidth
	case headWidth+tailContext > winwidth:
		cut = headWidth + tailContext - winwidth
	default:
		return line
	}
	return runewidth.TruncateLeft(line, cut, "")
}
