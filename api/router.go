package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/tubescrape/api/handler"
	"github.com/use-agent/tubescrape/config"
)

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:  Recovery → Logger
//
// /api/channel/videos is the legacy path; /api/v1/channel/videos mirrors it.
func NewRouter(svc handler.ChannelGetter, cfg *config.Config, startTime time.Time) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	r.GET("/api/channel/videos", handler.ChannelVideos(svc, cfg.Channel.DefaultLanguage))

	v1 := r.Group("/api/v1")
	v1.GET("/health", handler.Health(startTime))
	v1.GET("/channel/videos", handler.ChannelVideos(svc, cfg.Channel.DefaultLanguage))

	return r
}
