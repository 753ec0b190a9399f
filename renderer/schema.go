// Package renderer maps the ytInitialData object graph of a channel
// "videos" page onto the models package.
//
// Upstream owns the payload shape and changes it without notice, so the
// schema here is typed but partial: every field is optional, and the
// containers between the root and the renderers are kept as raw JSON until
// an accessor decodes them. A type change in one grid item or one header
// field therefore costs that item or field only.
package renderer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/use-agent/tubescrape/models"
)

// ErrMissingField is wrapped by every mapping error.
var ErrMissingField = errors.New("missing field")

func missing(path string) error {
	return models.NewScrapeError(models.ErrCodeMissingField, path, ErrMissingField)
}

func malformed(path string, err error) error {
	return models.NewScrapeError(models.ErrCodeMissingField, path, errors.Join(ErrMissingField, err))
}

// InitialData is the root of the payload.
type InitialData struct {
	EstimatedResults json.RawMessage `json:"estimatedResults"`
	Contents         json.RawMessage `json:"contents"`
	Header           json.RawMessage `json:"header"`
}

// Text is upstream's formatted-string object: either a simpleText or a
// list of runs.
type Text struct {
	SimpleText *string `json:"simpleText"`
	Runs       []Run   `json:"runs"`
}

// Run is one segment of a Text.
type Run struct {
	Text string `json:"text"`
	Bold bool   `json:"bold"`
}

// ThumbnailList is an ordered list of renditions, smallest first.
type ThumbnailList struct {
	Thumbnails []Thumbnail `json:"thumbnails"`
}

// Thumbnail is one rendition.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// GridVideo is a gridVideoRenderer.
type GridVideo struct {
	VideoID            *string             `json:"videoId"`
	Title              *Text               `json:"title"`
	NavigationEndpoint *NavigationEndpoint `json:"navigationEndpoint"`
	ThumbnailOverlays  []ThumbnailOverlay  `json:"thumbnailOverlays"`
	DescriptionSnippet *Text               `json:"descriptionSnippet"`
	PublishedTimeText  *Text               `json:"publishedTimeText"`
	Thumbnail          *ThumbnailList      `json:"thumbnail"`
	ViewCountText      *Text               `json:"viewCountText"`
}

// NavigationEndpoint carries the relative watch URL of an item.
type NavigationEndpoint struct {
	CommandMetadata *struct {
		WebCommandMetadata *struct {
			URL *string `json:"url"`
		} `json:"webCommandMetadata"`
	} `json:"commandMetadata"`
}

// ThumbnailOverlay is one overlay drawn on an item's thumbnail. Only the
// time-status overlay is of interest.
type ThumbnailOverlay struct {
	TimeStatus *struct {
		Text *Text `json:"text"`
	} `json:"thumbnailOverlayTimeStatusRenderer"`
}

type browseContents struct {
	TwoColumn *struct {
		Tabs []json.RawMessage `json:"tabs"`
	} `json:"twoColumnBrowseResultsRenderer"`
}

type tab struct {
	TabRenderer *struct {
		Content *struct {
			SectionListRenderer *struct {
				Contents []json.RawMessage `json:"contents"`
			} `json:"sectionListRenderer"`
		} `json:"content"`
	} `json:"tabRenderer"`
}

type section struct {
	ItemSectionRenderer *struct {
		Contents []struct {
			GridRenderer *struct {
				Items []json.RawMessage `json:"items"`
			} `json:"gridRenderer"`
		} `json:"contents"`
	} `json:"itemSectionRenderer"`
}

type gridItem struct {
	GridVideoRenderer *GridVideo `json:"gridVideoRenderer"`
}

// videosTab is the index of the "Videos" tab in the channel tab strip.
const videosTab = 1

// EstimatedResultCount returns estimatedResults as a string, "0" when absent.
// Upstream has sent it both as a JSON string and as a number.
func (d *InitialData) EstimatedResultCount() string {
	raw := strings.TrimSpace(string(d.EstimatedResults))
	if raw == "" || raw == "null" {
		return "0"
	}
	var s string
	if err := json.Unmarshal(d.EstimatedResults, &s); err == nil {
		if s == "" {
			return "0"
		}
		return s
	}
	var n json.Number
	if err := json.Unmarshal(d.EstimatedResults, &n); err == nil {
		return n.String()
	}
	return "0"
}

// HeaderFields returns the fields of header.c4TabbedHeaderRenderer, each
// still undecoded.
func (d *InitialData) HeaderFields() (map[string]json.RawMessage, error) {
	if isAbsent(d.Header) {
		return nil, missing("header")
	}
	var h struct {
		C4 map[string]json.RawMessage `json:"c4TabbedHeaderRenderer"`
	}
	if err := json.Unmarshal(d.Header, &h); err != nil {
		return nil, malformed("header", err)
	}
	if h.C4 == nil {
		return nil, missing("header.c4TabbedHeaderRenderer")
	}
	return h.C4, nil
}

// Sections returns the section list of the videos tab, each entry still
// undecoded.
func (d *InitialData) Sections() ([]json.RawMessage, error) {
	if isAbsent(d.Contents) {
		return nil, missing("contents")
	}
	var c browseContents
	if err := json.Unmarshal(d.Contents, &c); err != nil {
		return nil, malformed("contents", err)
	}
	if c.TwoColumn == nil {
		return nil, missing("contents.twoColumnBrowseResultsRenderer")
	}
	if len(c.TwoColumn.Tabs) <= videosTab {
		return nil, missing(fmt.Sprintf("contents.twoColumnBrowseResultsRenderer.tabs[%d]", videosTab))
	}
	var t tab
	if err := json.Unmarshal(c.TwoColumn.Tabs[videosTab], &t); err != nil {
		return nil, malformed("tabs[1]", err)
	}
	if t.TabRenderer == nil || t.TabRenderer.Content == nil || t.TabRenderer.Content.SectionListRenderer == nil {
		return nil, missing("tabs[1].tabRenderer.content.sectionListRenderer")
	}
	return t.TabRenderer.Content.SectionListRenderer.Contents, nil
}

// GridItems decodes one section list entry and returns the grid items of
// its first content. ok is false for sections that are not item sections,
// which are skipped without error.
func GridItems(raw json.RawMessage) (items []json.RawMessage, ok bool, err error) {
	var s section
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false, malformed("sectionList.contents[]", err)
	}
	if s.ItemSectionRenderer == nil {
		return nil, false, nil
	}
	if len(s.ItemSectionRenderer.Contents) == 0 || s.ItemSectionRenderer.Contents[0].GridRenderer == nil {
		return nil, false, missing("itemSectionRenderer.contents[0].gridRenderer")
	}
	return s.ItemSectionRenderer.Contents[0].GridRenderer.Items, true, nil
}

// DecodeGridVideo decodes one grid item. ok is false for items that are not
// grid videos (continuations, shelves), which are skipped without error.
func DecodeGridVideo(raw json.RawMessage) (gv *GridVideo, ok bool, err error) {
	var it gridItem
	if err := json.Unmarshal(raw, &it); err != nil {
		return nil, false, malformed("gridRenderer.items[]", err)
	}
	if it.GridVideoRenderer == nil {
		return nil, false, nil
	}
	return it.GridVideoRenderer, true, nil
}

// field decodes m[key] into a T.
func field[T any](m map[string]json.RawMessage, key string) (T, error) {
	var v T
	raw, ok := m[key]
	if !ok || isAbsent(raw) {
		return v, missing(key)
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, malformed(key, err)
	}
	return v, nil
}

func isAbsent(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}
