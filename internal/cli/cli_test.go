package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trigrman/granola-meetings/config"
	"github.com/trigrman/granola-meetings/internal/app"
	"github.com/trigrman/granola-meetings/internal/cache"
)

const testState = `{
	"documents": {
		"standup": {
			"title": "Daily Standup",
			"created_at": "2024-01-02T08:58:00Z",
			"google_calendar_event": {"start": {"dateTime": "2024-01-02T09:00:00Z"}},
			"notes_plain": "blockers"
		},
		"retro": {
			"title": "Retro",
			"created_at": "2024-01-01T15:00:00Z",
			"overview": "what went well"
		}
	},
	"documentPanels": {
		"standup": {
			"p1": {"title": "Summary", "content": {"type": "doc", "content": [
				{"type": "orderedList", "content": [
					{"type": "listItem", "content": [{"type": "paragraph"}]},
					{"type": "listItem", "content": [{"type": "paragraph", "content": [{"type": "text", "text": "Fix CI"}]}]}
				]}
			]}}
		}
	},
	"transcripts": {
		"t1": [
			{"document_id": "standup", "text": "morning all", "start_timestamp": "2024-01-02T09:00:05Z"},
			{"document_id": "standup", "text": "hi", "start_timestamp": "2024-01-02T09:00:01Z"}
		]
	}
}`

func writeCache(t *testing.T) string {
	t.Helper()
	data, err := json.Marshal(map[string]string{"cache": `{"state": ` + testState + `}`})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "cache-v3.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func execute(t *testing.T, cachePath string, args ...string) (string, error) {
	t.Helper()
	cfg := config.Default()
	cfg.CachePath = cachePath
	deps := &Dependencies{App: app.New(cfg), Config: cfg}

	cmd := NewRootCmd(deps)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCmd(t *testing.T) {
	out, err := execute(t, writeCache(t), "list")
	require.NoError(t, err)
	assert.Equal(t,
		"[2024-01-02 9:00 AM] Daily Standup\n  ID: standup\n\n"+
			"[2024-01-01 3:00 PM] Retro\n  ID: retro\n\n",
		out)
}

func TestListCmdJSON(t *testing.T) {
	out, err := execute(t, writeCache(t), "list", "--format", "json", "--limit", "1")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "standup", got[0]["id"])
}

func TestNotesCmd(t *testing.T) {
	out, err := execute(t, writeCache(t), "notes", "1")
	require.NoError(t, err)
	assert.Equal(t,
		"# Daily Standup (2024-01-02)\n\n## Summary\n\n2. Fix CI\n\n"+strings.Repeat("=", 60)+"\n\n",
		out)

	_, err = execute(t, writeCache(t), "notes", "many")
	assert.Error(t, err)
}

func TestSearchCmd(t *testing.T) {
	out, err := execute(t, writeCache(t), "search", "WENT", "well")
	require.NoError(t, err)
	assert.Equal(t, "Found 1 meetings matching 'WENT well':\n\n- Retro (2024-01-01)\n  ID: retro\n", out)
}

func TestSearchCmdNoMatchJSON(t *testing.T) {
	out, err := execute(t, writeCache(t), "search", "zzz-no-match", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestGetCmd(t *testing.T) {
	out, err := execute(t, writeCache(t), "get", "standup", "--transcript")
	require.NoError(t, err)
	assert.Equal(t,
		"# Daily Standup\nDate: 2024-01-02 at 9:00 AM\n\n## Summary\n\n2. Fix CI\n\n## Raw Transcript\nhi morning all...\n",
		out)

	_, err = execute(t, writeCache(t), "get", "missing")
	assert.EqualError(t, err, "meeting missing not found")
}

func TestMissingCache(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "nope.json"), "list")
	require.Error(t, err)
	assert.ErrorIs(t, err, cache.ErrCacheNotFound)
}

func TestCacheFlagOverridesConfig(t *testing.T) {
	path := writeCache(t)
	out, err := execute(t, filepath.Join(t.TempDir(), "nope.json"), "--cache", path, "search", "standup")
	require.NoError(t, err)
	assert.Contains(t, out, "ID: standup")
}

func TestUnknownFormat(t *testing.T) {
	_, err := execute(t, writeCache(t), "list", "--format", "xml")
	assert.Error(t, err)
}

func TestDoctorCmd(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	out, err := execute(t, writeCache(t), "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "2 meetings")
	assert.Contains(t, out, "All checks passed.")

	out, err = execute(t, filepath.Join(t.TempDir(), "nope.json"), "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "Some checks failed.")
}
