// Package classifier assigns every comment exactly one campaign topic from a
// fixed, ordered rule table. Classification is pure and total: any string,
// including the empty one, resolves to a category.
package classifier

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"campaignlens/internal/campaign"
)

const (
	// Comments shorter than this (in runes, after trimming) are unreliable
	// for any pattern match and fall through to the noise category.
	noiseMaxRunes = 10
	// The filler rule only applies to comments of at most this many tokens.
	fillerMaxTokens = 3
)

type Classifier struct {
	rules []rule
}

// New builds a classifier for the given campaign. Every rule category must
// appear in the campaign's category list; the table itself is fixed.
func New(cfg *campaign.Config) (*Classifier, error) {
	for _, r := range ruleTable {
		if !cfg.HasCategory(r.category) {
			return nil, fmt.Errorf("[Classifier] rule category %q not in campaign %q", r.category, cfg.CampaignName)
		}
	}
	if !cfg.HasCategory(campaign.CategoryOther) {
		return nil, fmt.Errorf("[Classifier] campaign %q missing catch-all category", cfg.CampaignName)
	}

	return &Classifier{rules: ruleTable}, nil
}

// Classify returns the topic for a comment. The ordered rules are evaluated
// first-match-wins; afterwards two residual fallbacks apply: very short or
// noise-token comments become noise, everything else becomes the catch-all.
func (c *Classifier) Classify(text string) string {
	lower := strings.ToLower(text)
	tokenCount := len(strings.Fields(lower))

	for _, r := range c.rules {
		if r.maxTokens > 0 && tokenCount > r.maxTokens {
			continue
		}
		if r.pattern.MatchString(lower) {
			return r.category
		}
	}

	trimmed := strings.TrimSpace(lower)
	if utf8.RuneCountInString(trimmed) < noiseMaxRunes {
		return catNoise
	}
	if _, ok := noiseTokens[trimmed]; ok {
		return catNoise
	}

	return campaign.CategoryOther
}

// Categories returns the rule categories in priority order.
func (c *Classifier) Categories() []string {
	out := make([]string, 0, len(c.rules))
	for _, r := range c.rules {
		out = append(out, r.category)
	}
	return out
}
