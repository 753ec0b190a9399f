package renderer

import (
	"encoding/json"
	"log/slog"

	"github.com/use-agent/tubescrape/models"
)

// Page is the normalized content of one channel videos page.
type Page struct {
	Channel          *models.ChannelInfo // nil when the header is absent
	Videos           []models.Video
	EstimatedResults string
}

// Normalizer turns a decoded payload into a Page.
type Normalizer struct {
	// BaseURL prefixes the relative watch paths.
	BaseURL string

	// Log receives per-field and per-item mapping failures.
	// Nil means slog.Default().
	Log *slog.Logger
}

// Normalize never fails: structural problems shrink the Page instead.
func (n *Normalizer) Normalize(d *InitialData) Page {
	log := n.Log
	if log == nil {
		log = slog.Default()
	}

	page := Page{EstimatedResults: d.EstimatedResultCount()}

	if fields, err := d.HeaderFields(); err != nil {
		log.Warn("channel header unavailable", "error", err)
	} else {
		info, errs := MapChannel(fields)
		for _, e := range errs {
			log.Warn("channel header field unavailable", "error", e)
		}
		page.Channel = info
	}

	sections, err := d.Sections()
	if err != nil {
		log.Warn("video section list unavailable", "error", err)
		return page
	}

	for i, raw := range sections {
		items, ok, err := GridItems(raw)
		if err != nil {
			log.Warn("skipping section", "index", i, "error", err)
			continue
		}
		if !ok {
			continue
		}
		page.Videos = append(page.Videos, n.mapItems(log, items)...)
	}
	return page
}

// mapItems maps every grid item it can; the rest are logged and dropped.
func (n *Normalizer) mapItems(log *slog.Logger, items []json.RawMessage) []models.Video {
	out := make([]models.Video, 0, len(items))
	for i, raw := range items {
		gv, ok, err := DecodeGridVideo(raw)
		if err != nil {
			log.Warn("skipping grid item", "index", i, "error", err)
			continue
		}
		if !ok {
			continue
		}
		v, err := MapVideo(gv, n.BaseURL)
		if err != nil {
			log.Warn("skipping grid item", "index", i, "error", err)
			continue
		}
		out = append(out, v)
	}
	return out
}
