// Package card renders pair-up notification cards.
package card

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"sync"
	"text/template"
)

const pairUpTemplateKey = "_PCTemplate"

// PairUpCardData is the data rendered into a pair-up notification card.
// The card is addressed to one recipient and shows the other side of the
// pair as the match.
type PairUpCardData struct {
	TeamName    string
	MatchedName string
	MatchedUPN  string
	ChatURL     string
	MeetingURL  string
}

// Renderer renders notification cards from a disk template. The template is
// parsed on first use and cached for the process lifetime.
type Renderer struct {
	path string

	mu    sync.Mutex
	cache map[string]*template.Template
}

// NewRenderer creates a renderer for the template at path.
func NewRenderer(path string) *Renderer {
	return &Renderer{path: path, cache: make(map[string]*template.Template)}
}

// RenderPairUp renders the notification card for one recipient of a pair.
func (r *Renderer) RenderPairUp(teamName, matchedName, matchedUPN string) ([]byte, error) {
	tmpl, err := r.load(pairUpTemplateKey, r.path)
	if err != nil {
		return nil, err
	}

	data := PairUpCardData{
		TeamName:    teamName,
		MatchedName: matchedName,
		MatchedUPN:  matchedUPN,
		ChatURL:     chatDeepLink(matchedUPN, matchedName),
		MeetingURL:  meetingDeepLink(matchedUPN, teamName),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render pair-up card: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) load(key, path string) (*template.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.cache[key]; ok {
		return tmpl, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read card template %s: %w", path, err)
	}
	tmpl, err := template.New(key).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse card template %s: %w", path, err)
	}

	r.cache[key] = tmpl
	return tmpl, nil
}

// chatDeepLink builds the deep link that opens a 1:1 chat with the match.
func chatDeepLink(upn, name string) string {
	message := fmt.Sprintf("Hi %s, we got matched for a pair-up meetup!", name)
	return fmt.Sprintf("https://teams.microsoft.com/l/chat/0/0?users=%s&message=%s",
		url.QueryEscape(upn), url.QueryEscape(message))
}

// meetingDeepLink builds the deep link that proposes a meeting with the match.
func meetingDeepLink(upn, teamName string) string {
	subject := fmt.Sprintf("%s pair-up meetup", teamName)
	return fmt.Sprintf("https://teams.microsoft.com/l/meeting/new?attendees=%s&subject=%s",
		url.QueryEscape(upn), url.QueryEscape(subject))
}
