// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scripture finds passages whose celestial language matches a
// search query, so catalog entries can carry the references that
// motivated them. A built-in corpus of cosmic passages answers searches
// offline; full passage text for arbitrary references comes from a
// remote passage API when one is configured.
package scripture

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/mwhitt/sky-engine/internal/httputil"
	"github.com/mwhitt/sky-engine/pkg/types"
)

// Passage is one scored search result.
type Passage struct {
	// Reference is the canonical citation, e.g. "Joel 2:31".
	Reference string `json:"reference" yaml:"reference"`

	// Text is the passage text.
	Text string `json:"text" yaml:"text"`

	// Score is the keyword match score, higher is better.
	Score float64 `json:"score" yaml:"score"`

	// Tags are the celestial themes the passage matched on.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Service answers passage searches and reference lookups.
type Service struct {
	client      *http.Client
	baseURL     string
	userAgent   string
	maxPassages int
}

// NewService builds a Service from configuration. An empty BaseURL
// disables remote lookups; searches still work from the built-in
// corpus.
func NewService(cfg types.ScriptureConfig) *Service {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	maxPassages := cfg.MaxPassages
	if maxPassages <= 0 {
		maxPassages = 5
	}
	return &Service{
		client:      &http.Client{Timeout: timeout},
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		userAgent:   cfg.UserAgent,
		maxPassages: maxPassages,
	}
}

// themes maps a tag to the keywords that signal it. A query word
// matching any keyword earns the passage that tag.
var themes = map[string][]string{
	"cosmic_signs": {"sun", "moon", "star", "stars", "heaven", "heavens",
		"sky", "darkened", "blood", "eclipse", "light"},
	"astronomical": {"constellation", "pleiades", "orion", "arcturus",
		"mazzaroth", "morning star", "day star"},
	"prophetic_imagery": {"sign", "wonder", "portent", "vision",
		"revelation", "dragon", "woman", "child", "crown"},
}

// Search scores the built-in corpus against the query and returns the
// best matches, highest score first, capped at the configured maximum.
// It never performs network I/O.
func (s *Service) Search(query string) []Passage {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return nil
	}

	var results []Passage
	for _, p := range corpus {
		text := strings.ToLower(p.Text)
		var score float64
		tagSet := map[string]bool{}
		for _, w := range words {
			if !strings.Contains(text, w) {
				continue
			}
			score++
			for tag, keywords := range themes {
				for _, k := range keywords {
					if w == k {
						tagSet[tag] = true
					}
				}
			}
		}
		if score == 0 {
			continue
		}
		tags := make([]string, 0, len(tagSet))
		for tag := range tagSet {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		results = append(results, Passage{
			Reference: p.Reference,
			Text:      p.Text,
			Score:     score / float64(len(words)),
			Tags:      tags,
		})
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > s.maxPassages {
		results = results[:s.maxPassages]
	}
	return results
}

// Lookup fetches the text for one citation. The built-in corpus is
// consulted first; unknown references go to the remote passage API.
func (s *Service) Lookup(ctx context.Context, reference string) (Passage, error) {
	for _, p := range corpus {
		if strings.EqualFold(p.Reference, reference) {
			return p, nil
		}
	}
	if s.baseURL == "" {
		return Passage{}, fmt.Errorf("reference %q not in corpus and no passage API configured", reference)
	}

	reqURL := s.baseURL + "/" + url.PathEscape(reference)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Passage{}, fmt.Errorf("building passage request: %w", err)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, s.client, req, 2)
	if err != nil {
		return Passage{}, fmt.Errorf("fetching passage %q: %w", reference, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Passage{}, fmt.Errorf("passage API returned %s for %q", resp.Status, reference)
	}

	var body struct {
		Reference string `json:"reference"`
		Text      string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Passage{}, fmt.Errorf("decoding passage response: %w", err)
	}
	if body.Reference == "" {
		body.Reference = reference
	}
	return Passage{Reference: body.Reference, Text: strings.TrimSpace(body.Text)}, nil
}
