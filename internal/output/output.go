package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/trigrman/granola-meetings/internal/domain/meeting"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// UnknownDate labels meetings without any timestamp.
const UnknownDate = "Unknown"

const separatorWidth = 60

type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "❌ %s\n", msg)
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "ℹ️  %s\n", msg)
}

func (f *Formatter) Success(msg string) {
	fmt.Fprintf(f.w, "✅ %s\n", msg)
}

func (f *Formatter) Warning(msg string) {
	fmt.Fprintf(f.w, "⚠️  %s\n", msg)
}

func (f *Formatter) SetupCheck(name string, ok bool, detail string) {
	if ok {
		fmt.Fprintf(f.w, "  ✅ %s: %s\n", name, detail)
	} else {
		fmt.Fprintf(f.w, "  ❌ %s: %s\n", name, detail)
	}
}

// Structured writes v as JSON or YAML.
func (f *Formatter) Structured(format string, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(f.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(f.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported format %q", format)
}

// MeetingList prints meetings grouped by day. Days run newest first and the
// meetings of one day run in chronological order.
func (f *Formatter) MeetingList(meetings []meeting.Meeting) {
	byDay := make(map[string][]meeting.Meeting)
	var days []string
	for _, m := range meetings {
		day := DayOf(m.StartTime())
		if _, ok := byDay[day]; !ok {
			days = append(days, day)
		}
		byDay[day] = append(byDay[day], m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	for _, day := range days {
		dayMeetings := byDay[day]
		sort.SliceStable(dayMeetings, func(i, j int) bool {
			return dayMeetings[i].StartTime() < dayMeetings[j].StartTime()
		})
		for _, m := range dayMeetings {
			clock := ""
			if c := Clock(m.StartTime()); c != "" {
				clock = " " + c
			}
			fmt.Fprintf(f.w, "[%s%s] %s\n", day, clock, m.Title)
			fmt.Fprintf(f.w, "  ID: %s\n\n", m.ID)
		}
	}
}

// NotesList prints each meeting's notes followed by a separator line.
func (f *Formatter) NotesList(entries []meeting.NotesEntry) {
	for _, e := range entries {
		created := ""
		if e.CreatedAt != nil {
			created = *e.CreatedAt
		}
		fmt.Fprintf(f.w, "# %s (%s)\n\n", e.Title, DayOf(created))
		if e.FormattedNotes != "" {
			fmt.Fprintln(f.w, e.FormattedNotes)
		} else {
			fmt.Fprintln(f.w, "(No formatted notes available)")
		}
		fmt.Fprintf(f.w, "\n%s\n\n", strings.Repeat("=", separatorWidth))
	}
}

func (f *Formatter) SearchResults(query string, meetings []meeting.Meeting) {
	fmt.Fprintf(f.w, "Found %d meetings matching '%s':\n\n", len(meetings), query)
	for _, m := range meetings {
		fmt.Fprintf(f.w, "- %s (%s)\n", m.Title, truncate(m.Created(), 10))
		fmt.Fprintf(f.w, "  ID: %s\n", m.ID)
	}
}

// MeetingDetail prints one meeting. The transcript, when present, is cut to
// budget characters and always ends with an ellipsis.
func (f *Formatter) MeetingDetail(d *meeting.Detail, budget int) {
	fmt.Fprintf(f.w, "# %s\n", d.Title)
	at := ""
	if c := Clock(d.StartTime()); c != "" {
		at = " at " + c
	}
	fmt.Fprintf(f.w, "Date: %s%s\n\n", DayOf(d.StartTime()), at)

	if d.FormattedNotes != "" {
		fmt.Fprintln(f.w, d.FormattedNotes)
	}
	if d.Transcript != nil && *d.Transcript != "" {
		fmt.Fprintf(f.w, "\n## Raw Transcript\n%s...\n", truncate(*d.Transcript, budget))
	}
}

// DayOf returns the YYYY-MM-DD prefix of an ISO timestamp, or UnknownDate.
func DayOf(iso string) string {
	if iso == "" {
		return UnknownDate
	}
	return truncate(iso, 10)
}

var clockLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Clock formats an ISO-8601 date-time as e.g. "9:00 AM" in the timestamp's
// own offset. Anything unparseable, including date-only values, yields "".
func Clock(iso string) string {
	if !strings.Contains(iso, "T") {
		return ""
	}
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("3:04 PM")
		}
	}
	return ""
}

func truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
