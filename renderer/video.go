package renderer

import (
	"strings"

	"github.com/use-agent/tubescrape/models"
)

// Sentinels for items that are streaming right now.
const (
	LiveDuration   = "Live"
	LiveUploadDate = "Live"
	NoViews        = "0 views"
	NoWatchers     = "0 watching"
)

// MapVideo maps one grid video. Only a missing videoId fails the item;
// every other field degrades to its fallback.
func MapVideo(gv *GridVideo, baseURL string) (models.Video, error) {
	if gv == nil {
		return models.Video{}, missing("gridVideoRenderer")
	}
	if gv.VideoID == nil || *gv.VideoID == "" {
		return models.Video{}, missing("gridVideoRenderer.videoId")
	}

	v := models.Video{
		ID:         *gv.VideoID,
		Title:      gv.Title.String(),
		URL:        watchURL(gv.NavigationEndpoint, baseURL),
		Duration:   duration(gv.ThumbnailOverlays),
		UploadDate: LiveUploadDate,
		Views:      views(gv.ViewCountText, gv.PublishedTimeText != nil),
	}
	if gv.DescriptionSnippet != nil {
		v.Snippet = JoinRuns(gv.DescriptionSnippet.Runs, BoldMarkup)
	}
	if published := gv.PublishedTimeText.String(); published != "" {
		v.UploadDate = published
	}
	if gv.Thumbnail != nil {
		if t, ok := last(gv.Thumbnail.Thumbnails); ok {
			v.ThumbnailSrc = t.URL
		}
	}
	return v, nil
}

func watchURL(ep *NavigationEndpoint, baseURL string) string {
	if ep == nil || ep.CommandMetadata == nil || ep.CommandMetadata.WebCommandMetadata == nil ||
		ep.CommandMetadata.WebCommandMetadata.URL == nil {
		return ""
	}
	return strings.TrimSuffix(baseURL, "/") + *ep.CommandMetadata.WebCommandMetadata.URL
}

// duration reads the first overlay's time status. A live stream has no
// duration text there.
func duration(overlays []ThumbnailOverlay) string {
	if len(overlays) == 0 || overlays[0].TimeStatus == nil {
		return LiveDuration
	}
	t := overlays[0].TimeStatus.Text
	if t == nil || t.SimpleText == nil || *t.SimpleText == "" {
		return LiveDuration
	}
	return *t.SimpleText
}

// views prefers the simple text, then the joined runs ("57", " watching").
// Without any count, an item with a publish time is an ended video and one
// without is a stream that has not reported watchers yet.
func views(t *Text, published bool) string {
	if t == nil {
		if published {
			return NoViews
		}
		return NoWatchers
	}
	if t.SimpleText != nil && *t.SimpleText != "" {
		return *t.SimpleText
	}
	return JoinRuns(t.Runs, Plain)
}
