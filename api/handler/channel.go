package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/tubescrape/models"
)

// ChannelGetter is the core operation behind the channel route.
type ChannelGetter interface {
	GetChannel(ctx context.Context, channelID, languageCode string) (*models.ChannelResponse, error)
}

// ChannelVideos returns a handler for GET /api/channel/videos.
//
// Query: id (required), language (optional, Accept-Language upstream).
// A page whose payload could not be extracted still answers 200 with an
// empty results list; only fetch failures produce an error body.
func ChannelVideos(svc ChannelGetter, defaultLanguage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ChannelRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "query parameter id is required",
				Code:  models.ErrCodeInvalidInput,
			})
			return
		}
		req.Defaults(defaultLanguage)

		resp, err := svc.GetChannel(c.Request.Context(), req.ID, req.Language)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// respondError maps a ScrapeError to the correct HTTP status code and writes
// the error body.
func respondError(c *gin.Context, err error) {
	var scrapeErr *models.ScrapeError
	if !errors.As(err, &scrapeErr) {
		scrapeErr = models.NewScrapeError(models.ErrCodeInternal, err.Error(), err)
	}
	c.JSON(mapErrorToStatus(scrapeErr), scrapeErr.ToResponse())
}

// mapErrorToStatus translates error codes to HTTP status codes.
func mapErrorToStatus(e *models.ScrapeError) int {
	switch e.Code {
	case models.ErrCodeFetch:
		return http.StatusBadGateway // 502
	case models.ErrCodeInvalidInput:
		return http.StatusBadRequest // 400
	default:
		return http.StatusInternalServerError // 500
	}
}
