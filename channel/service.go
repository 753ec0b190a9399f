// Package channel implements the channel videos operation: fetch the page,
// locate the embedded payload and normalize it.
package channel

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/use-agent/tubescrape/config"
	"github.com/use-agent/tubescrape/engine"
	"github.com/use-agent/tubescrape/extractor"
	"github.com/use-agent/tubescrape/models"
	"github.com/use-agent/tubescrape/renderer"
)

// Service is safe for concurrent use: requests share only immutable
// configuration and the engine.
type Service struct {
	engine          engine.Engine
	baseURL         string
	defaultLanguage string
	dumper          *Dumper
	log             *slog.Logger
}

// NewService creates a Service fetching through eng.
func NewService(eng engine.Engine, cfg config.ChannelConfig, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	lang := cfg.DefaultLanguage
	if lang == "" {
		lang = "en-US"
	}
	return &Service{
		engine:          eng,
		baseURL:         strings.TrimSuffix(cfg.BaseURL, "/"),
		defaultLanguage: lang,
		dumper:          NewDumper(cfg.DumpDir),
		log:             log,
	}
}

// PageURL returns the videos page URL of channelID.
func (s *Service) PageURL(channelID string) string {
	return fmt.Sprintf("%s/channel/%s/videos", s.baseURL, url.PathEscape(channelID))
}

// GetChannel fetches and normalizes the videos page of channelID. Errors are
// *models.ScrapeError: INVALID_INPUT for an empty id, FETCH_FAILED for
// transport failures. Pages whose payload cannot be extracted yield a
// response with no results and a nil error.
func (s *Service) GetChannel(ctx context.Context, channelID, languageCode string) (*models.ChannelResponse, error) {
	channelID = strings.TrimSpace(channelID)
	if channelID == "" {
		return nil, models.NewScrapeError(models.ErrCodeInvalidInput, "channel id required", nil)
	}
	if languageCode == "" {
		languageCode = s.defaultLanguage
	}

	log := s.log.With("channel_id", channelID)
	pageURL := s.PageURL(channelID)

	res, err := s.engine.Fetch(ctx, &engine.FetchRequest{
		URL:     pageURL,
		Headers: map[string]string{"Accept-Language": languageCode},
	})
	if err != nil {
		log.Error("channel page fetch failed", "url", pageURL, "error", err)
		return nil, models.NewScrapeError(models.ErrCodeFetch, "failed to fetch channel page", err)
	}

	resp, err := s.parse(res.HTML, log)
	if err != nil {
		s.recordFailure(log, channelID, res, err)
	}
	return resp, nil
}

// Parse normalizes an already fetched page. A non-nil error reports why
// extraction degraded; the response is always usable.
func (s *Service) Parse(html string) (*models.ChannelResponse, error) {
	return s.parse(html, s.log)
}

func (s *Service) parse(html string, log *slog.Logger) (*models.ChannelResponse, error) {
	resp := &models.ChannelResponse{
		Results:          []models.ResultItem{},
		Version:          models.Version,
		EstimatedResults: "0",
	}

	var data renderer.InitialData
	variant, err := extractor.Decode(html, &data)
	resp.Parser = string(variant)
	if err != nil {
		return resp, err
	}
	log.Debug("initial data located", "variant", variant)

	n := renderer.Normalizer{BaseURL: s.baseURL, Log: log}
	page := n.Normalize(&data)

	resp.EstimatedResults = page.EstimatedResults
	if page.Channel != nil {
		resp.Results = append(resp.Results, models.ResultItem{ChannelInfo: page.Channel})
	}
	for i := range page.Videos {
		resp.Results = append(resp.Results, models.ResultItem{Video: &page.Videos[i]})
	}
	return resp, nil
}

// recordFailure logs an extraction failure with enough context to inspect
// the page offline, and dumps the raw HTML when a dump dir is configured.
func (s *Service) recordFailure(log *slog.Logger, channelID string, res *engine.FetchResult, err error) {
	probe := extractor.ProbeScripts(res.HTML)
	attrs := []any{
		"error", err,
		"code", models.CodeOf(err),
		"final_url", res.FinalURL,
		"title", res.Title,
		"html_bytes", len(res.HTML),
		"scripts", probe.Scripts,
		"candidate_scripts", probe.Candidate,
		"largest_candidate", probe.Largest,
	}
	path, dumpErr := s.dumper.Dump(channelID, res.HTML)
	switch {
	case dumpErr != nil:
		attrs = append(attrs, "dump_error", dumpErr)
	case path != "":
		attrs = append(attrs, "dump", path)
	default:
		// Without a dump dir the page goes to the debug log.
		log.Debug("raw channel page", "html", res.HTML)
	}
	log.Warn("failed to extract initial data", attrs...)
}
