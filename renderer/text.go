package renderer

import "strings"

// RunStyle controls how JoinRuns renders a run.
type RunStyle int

const (
	// Plain concatenates run texts.
	Plain RunStyle = iota
	// BoldMarkup additionally wraps bold runs in <b></b>.
	BoldMarkup
)

// JoinRuns folds runs into one string, in order.
func JoinRuns(runs []Run, style RunStyle) string {
	var b strings.Builder
	for _, r := range runs {
		if style == BoldMarkup && r.Bold {
			b.WriteString("<b>")
			b.WriteString(r.Text)
			b.WriteString("</b>")
			continue
		}
		b.WriteString(r.Text)
	}
	return b.String()
}

// String renders t: simpleText when set, the joined runs otherwise.
func (t *Text) String() string {
	if t == nil {
		return ""
	}
	if t.SimpleText != nil {
		return *t.SimpleText
	}
	return JoinRuns(t.Runs, Plain)
}

// last returns the final element of list, the highest resolution upstream
// offers. The list length varies per item.
func last(list []Thumbnail) (Thumbnail, bool) {
	if len(list) == 0 {
		return Thumbnail{}, false
	}
	return list[len(list)-1], true
}
