package meeting

import (
	"sort"
	"strings"

	"github.com/trigrman/granola-meetings/internal/doctree"
)

// AssembleNotes joins panels into one notes block. Titled panels get a
// "## Title" line directly above their rendered content.
func AssembleNotes(panels []Panel) string {
	blocks := make([]string, 0, 2*len(panels))
	for _, p := range panels {
		if p.Title != "" {
			blocks = append(blocks, "## "+p.Title+"\n")
		}
		blocks = append(blocks, doctree.Render(p.Content))
	}
	return strings.TrimSpace(strings.Join(blocks, "\n"))
}

// SortByStartDesc orders meetings most recent first. Meetings without a
// start time sort last; ties keep their input order.
func SortByStartDesc(meetings []Meeting) {
	sort.SliceStable(meetings, func(i, j int) bool {
		return meetings[i].StartTime() > meetings[j].StartTime()
	})
}

// SortSegments orders segments by start timestamp, ascending.
func SortSegments(segments []TranscriptSegment) {
	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].StartTimestamp < segments[j].StartTimestamp
	})
}

// FormatTranscript joins the trimmed text of each non-empty segment with a
// single space.
func FormatTranscript(segments []TranscriptSegment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if text := strings.TrimSpace(seg.Text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}
