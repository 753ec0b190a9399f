package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

var scriptSel = cascadia.MustCompile("script")

// ScriptProbe summarises the inline scripts of a page. It is logged next to
// extraction failures to tell a changed serialization (marker present, no
// pattern matched) from a page that never carried the payload (consent wall,
// error page).
type ScriptProbe struct {
	Scripts   int `json:"scripts"`
	Candidate int `json:"candidate"` // scripts mentioning ytInitialData
	Largest   int `json:"largest"`   // byte length of the largest candidate
}

// ProbeScripts parses html and inspects its <script> elements.
func ProbeScripts(html string) ScriptProbe {
	var p ScriptProbe
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return p
	}
	doc.FindMatcher(scriptSel).Each(func(_ int, s *goquery.Selection) {
		p.Scripts++
		text := s.Text()
		if !strings.Contains(text, "ytInitialData") {
			return
		}
		p.Candidate++
		if len(text) > p.Largest {
			p.Largest = len(text)
		}
	})
	return p
}
