package card

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTemplate = `{"title":"Pair-up in {{.TeamName}}","match":"{{.MatchedName}}","chat":"{{.ChatURL}}","meeting":"{{.MeetingURL}}"}`

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pairup_card.json.tmpl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRenderer_RendersPairUpCard(t *testing.T) {
	renderer := NewRenderer(writeTemplate(t, testTemplate))

	out, err := renderer.RenderPairUp("Team One", "Bob", "bob@example.org")
	require.NoError(t, err)

	var card map[string]string
	require.NoError(t, json.Unmarshal(out, &card))
	assert.Equal(t, "Pair-up in Team One", card["title"])
	assert.Equal(t, "Bob", card["match"])
	assert.Contains(t, card["chat"], "bob%40example.org")
	assert.Contains(t, card["meeting"], "bob%40example.org")
}

func TestRenderer_CachesTemplateForProcessLifetime(t *testing.T) {
	path := writeTemplate(t, testTemplate)
	renderer := NewRenderer(path)

	first, err := renderer.RenderPairUp("Team One", "Bob", "bob@example.org")
	require.NoError(t, err)

	// Rewriting the file must not affect subsequent renders.
	require.NoError(t, os.WriteFile(path, []byte(`{"changed":true}`), 0o644))

	second, err := renderer.RenderPairUp("Team One", "Bob", "bob@example.org")
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestRenderer_MissingTemplateFails(t *testing.T) {
	renderer := NewRenderer(filepath.Join(t.TempDir(), "missing.tmpl"))

	_, err := renderer.RenderPairUp("Team One", "Bob", "bob@example.org")
	require.Error(t, err)
}

func TestRenderer_DefaultTemplateIsValidJSON(t *testing.T) {
	renderer := NewRenderer(filepath.Join("..", "..", "templates", "pairup_card.json.tmpl"))

	out, err := renderer.RenderPairUp("Team One", "Bob", "bob@example.org")
	require.NoError(t, err)

	var card map[string]any
	require.NoError(t, json.Unmarshal(out, &card))
	assert.Equal(t, "AdaptiveCard", card["type"])
}
