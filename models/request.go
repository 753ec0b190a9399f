package models

// ChannelRequest is the query string for GET /api/channel/videos.
type ChannelRequest struct {
	// ID is the upstream channel identifier (e.g. "UC..."). Required.
	ID string `form:"id" binding:"required"`

	// Language is sent upstream as Accept-Language.
	// Default: the configured default language ("en-US").
	Language string `form:"language"`
}

// Defaults applies default values to unset fields.
func (r *ChannelRequest) Defaults(defaultLanguage string) {
	if r.Language == "" {
		r.Language = defaultLanguage
	}
}
