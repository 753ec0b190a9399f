package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/use-agent/tubescrape/config"
	"github.com/use-agent/tubescrape/models"
)

func main() {
	if err := config.LoadDotenv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg := config.Load()

	s := server.NewMCPServer(
		"tubescrape",
		models.Version,
		server.WithToolCapabilities(false),
	)

	channelVideosTool := mcp.NewTool("get_channel_videos",
		mcp.WithDescription("List the videos shown on a YouTube channel's videos page, together with the channel's title, avatar, banner and subscriber count."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("The channel id, e.g. 'UC_x5XG1OV2P6uZZ5FSM9Ttw'"),
		),
		mcp.WithString("language",
			mcp.Description("Language code sent as Accept-Language (default: the server's default, usually 'en-US')"),
		),
	)
	s.AddTool(channelVideosTool, handleChannelVideos(cfg.MCP.APIURL, cfg.Fetch.Timeout+10*time.Second))

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func handleChannelVideos(apiURL string, timeout time.Duration) server.ToolHandlerFunc {
	client := &http.Client{Timeout: timeout}

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil || strings.TrimSpace(id) == "" {
			return mcp.NewToolResultError("id is required"), nil
		}

		q := url.Values{"id": {id}}
		if lang := request.GetString("language", ""); lang != "" {
			q.Set("language", lang)
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
			strings.TrimSuffix(apiURL, "/")+"/api/channel/videos?"+q.Encode(), nil)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to create request: %v", err)), nil
		}

		resp, err := client.Do(httpReq)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("API request failed: %v", err)), nil
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to read response: %v", err)), nil
		}

		if resp.StatusCode != http.StatusOK {
			var errResp models.ErrorResponse
			if err := json.Unmarshal(respBody, &errResp); err != nil || errResp.Error == "" {
				return mcp.NewToolResultError(fmt.Sprintf("API returned status %d", resp.StatusCode)), nil
			}
			if errResp.Code != "" {
				return mcp.NewToolResultError(fmt.Sprintf("[%s] %s", errResp.Code, errResp.Error)), nil
			}
			return mcp.NewToolResultError(errResp.Error), nil
		}

		var channelResp models.ChannelResponse
		if err := json.Unmarshal(respBody, &channelResp); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to parse response: %v", err)), nil
		}

		return mcp.NewToolResultText(formatChannel(&channelResp)), nil
	}
}

// formatChannel renders a channel response as plain text for the model.
func formatChannel(r *models.ChannelResponse) string {
	var sb strings.Builder

	if info := r.Channel(); info != nil {
		sb.WriteString(fmt.Sprintf("Channel: %s (%s)\n", info.Title, info.ID))
		if info.SubscriberCount != "" {
			sb.WriteString(fmt.Sprintf("Subscribers: %s\n", info.SubscriberCount))
		}
		if info.Avatar != nil {
			sb.WriteString(fmt.Sprintf("Avatar: %s\n", info.Avatar.URL))
		}
		if info.Banner != nil {
			sb.WriteString(fmt.Sprintf("Banner: %s\n", info.Banner.URL))
		}
		sb.WriteString("\n")
	}

	videos := r.Videos()
	if len(videos) == 0 {
		sb.WriteString("No videos could be extracted from the channel page.\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("%d videos (estimated results: %s)\n\n", len(videos), r.EstimatedResults))
	for i, v := range videos {
		sb.WriteString(fmt.Sprintf("--- [%d] %s ---\n", i+1, v.Title))
		sb.WriteString(fmt.Sprintf("URL: %s\nDuration: %s | Uploaded: %s | %s\n", v.URL, v.Duration, v.UploadDate, v.Views))
		if v.Snippet != "" {
			sb.WriteString(v.Snippet + "\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
