// Package extractor locates the ytInitialData bootstrap payload that
// upstream inlines into its HTML pages.
package extractor

import (
	"encoding/json"
	"errors"
	"regexp"

	"github.com/use-agent/tubescrape/models"
)

// Variant identifies which extraction pattern produced a payload.
type Variant string

const (
	// VariantObjectVar is the `var ytInitialData = {...};` serialization,
	// recognised by its leading "responseContext" key.
	VariantObjectVar Variant = models.ParserObjectVar

	// VariantOriginal is the older `window["ytInitialData"] = {...};`
	// serialization that is immediately followed by the player response.
	VariantOriginal Variant = models.ParserOriginal
)

var (
	ErrNoMatch     = errors.New("no ytInitialData pattern matched")
	ErrInvalidJSON = errors.New("captured ytInitialData is not valid JSON")
)

// Pattern is one way of isolating the payload. Group 1 holds the JSON.
type Pattern struct {
	Variant Variant
	Regexp  *regexp.Regexp
}

// patterns are tried in order. object_var goes first: its terminator is the
// payload's own closing brace, while the original pattern depends on the
// player response script following it.
var patterns = []Pattern{
	{
		Variant: VariantObjectVar,
		Regexp:  regexp.MustCompile(`(?s)ytInitialData[^{]*(.*"responseContext":[^;]*});`),
	},
	{
		Variant: VariantOriginal,
		Regexp:  regexp.MustCompile(`(?s)ytInitialData"[^{]*(.*);\s*window\["ytInitialPlayerResponse"\]`),
	},
}

// Patterns returns the extraction patterns in priority order.
func Patterns() []Pattern {
	out := make([]Pattern, len(patterns))
	copy(out, patterns)
	return out
}

// Blob is a located, syntactically valid JSON payload.
type Blob struct {
	Variant Variant
	JSON    []byte
}

// Locate finds the payload in html. The returned error is a
// *models.ScrapeError wrapping ErrNoMatch or ErrInvalidJSON. When the error
// wraps ErrInvalidJSON, the returned Variant still names the pattern that
// matched.
func Locate(html string) (Variant, *Blob, error) {
	for _, p := range patterns {
		m := p.Regexp.FindStringSubmatch(html)
		if len(m) < 2 {
			continue
		}
		raw := []byte(m[1])
		if !json.Valid(raw) {
			return p.Variant, nil, models.NewScrapeError(models.ErrCodeInvalidJSON,
				"captured payload is not valid JSON", ErrInvalidJSON)
		}
		return p.Variant, &Blob{Variant: p.Variant, JSON: raw}, nil
	}
	return "", nil, models.NewScrapeError(models.ErrCodeNoMatch,
		"no extraction pattern matched the page", ErrNoMatch)
}

// Decode locates the payload in html and unmarshals it into v.
func Decode(html string, v any) (Variant, error) {
	variant, blob, err := Locate(html)
	if err != nil {
		return variant, err
	}
	if err := json.Unmarshal(blob.JSON, v); err != nil {
		return variant, models.NewScrapeError(models.ErrCodeInvalidJSON,
			"payload does not fit the expected shape", errors.Join(ErrInvalidJSON, err))
	}
	return variant, nil
}
