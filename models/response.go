package models

// Version is reported in every channel response and by the health endpoint.
const Version = "1.2.0"

// Parser variants reported in ChannelResponse.Parser.
const (
	ParserObjectVar = "object_var"
	ParserOriginal  = "original"
)

// ChannelResponse is the response for GET /api/channel/videos.
//
// Results holds one channel_info wrapper (when the header could be mapped)
// followed by one video wrapper per successfully mapped grid item, in page
// order. A degraded extraction yields an empty Results slice, never an error.
type ChannelResponse struct {
	Results          []ResultItem `json:"results"`
	Version          string       `json:"version"`
	EstimatedResults string       `json:"estimatedResults"`

	// Parser names the extraction pattern that matched: "object_var" or
	// "original". Empty when neither matched.
	Parser string `json:"parser"`
}

// ResultItem wraps exactly one of ChannelInfo or Video.
type ResultItem struct {
	ChannelInfo *ChannelInfo `json:"channel_info,omitempty"`
	Video       *Video       `json:"video,omitempty"`
}

// ChannelInfo is the normalized channel header.
type ChannelInfo struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Avatar          *Thumbnail `json:"avatar,omitempty"`
	Banner          *Thumbnail `json:"banner,omitempty"`
	SubscriberCount string     `json:"subscriber_count"`
}

// Thumbnail is an image reference as offered upstream.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Video is the normalized record for one grid item.
type Video struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`

	// Duration is the overlay time text, or "Live" while streaming.
	Duration string `json:"duration"`

	// Snippet may contain <b>...</b> segments; empty when absent.
	Snippet string `json:"snippet"`

	// UploadDate is the relative publish text, or "Live".
	UploadDate string `json:"upload_date"`

	ThumbnailSrc string `json:"thumbnail_src"`

	// Views is a display string such as "1,234 views", "57 watching",
	// "0 views" or "0 watching".
	Views string `json:"views"`
}

// Videos returns the video records of r in order.
func (r *ChannelResponse) Videos() []Video {
	out := make([]Video, 0, len(r.Results))
	for _, item := range r.Results {
		if item.Video != nil {
			out = append(out, *item.Video)
		}
	}
	return out
}

// Channel returns the channel info of r, or nil when it was not extracted.
func (r *ChannelResponse) Channel() *ChannelInfo {
	for _, item := range r.Results {
		if item.ChannelInfo != nil {
			return item.ChannelInfo
		}
	}
	return nil
}

// HealthResponse is the response for GET /api/v1/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}
