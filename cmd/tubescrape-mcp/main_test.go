package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/use-agent/tubescrape/models"
)

func callTool(t *testing.T, apiURL string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = "get_channel_videos"
	req.Params.Arguments = args

	res, err := handleChannelVideos(apiURL, 5*time.Second)(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	return res
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	return tc.Text
}

func TestHandleChannelVideos(t *testing.T) {
	var gotQuery string
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/channel/videos", r.URL.Path)
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[
			{"channel_info":{"id":"UC1","title":"Chan","subscriber_count":"9 subscribers","banner":{"url":"https://b/2"}}},
			{"video":{"id":"v1","title":"First","url":"https://www.youtube.com/watch?v=v1","duration":"1:02",
			  "snippet":"a <b>bold</b> word","upload_date":"1 day ago","thumbnail_src":"t","views":"10 views"}}
		],"version":"1.2.0","estimatedResults":"1","parser":"object_var"}`))
	}))
	defer api.Close()

	res := callTool(t, api.URL+"/", map[string]any{"id": "UC1", "language": "fr"})
	assert.False(t, res.IsError)
	assert.Equal(t, "id=UC1&language=fr", gotQuery)

	out := text(t, res)
	assert.Contains(t, out, "Channel: Chan (UC1)")
	assert.Contains(t, out, "Subscribers: 9 subscribers")
	assert.Contains(t, out, "Banner: https://b/2")
	assert.NotContains(t, out, "Avatar:")
	assert.Contains(t, out, "1 videos (estimated results: 1)")
	assert.Contains(t, out, "--- [1] First ---")
	assert.Contains(t, out, "Duration: 1:02 | Uploaded: 1 day ago | 10 views")
	assert.Contains(t, out, "a <b>bold</b> word")
}

func TestHandleChannelVideos_APIError(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":"failed to fetch channel page: status 503","code":"FETCH_FAILED"}`))
	}))
	defer api.Close()

	res := callTool(t, api.URL, map[string]any{"id": "UC1"})
	assert.True(t, res.IsError)
	assert.Equal(t, "[FETCH_FAILED] failed to fetch channel page: status 503", text(t, res))
}

func TestHandleChannelVideos_NonJSONError(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "oops", http.StatusInternalServerError)
	}))
	defer api.Close()

	res := callTool(t, api.URL, map[string]any{"id": "UC1"})
	assert.True(t, res.IsError)
	assert.Equal(t, "API returned status 500", text(t, res))
}

func TestHandleChannelVideos_MissingID(t *testing.T) {
	res := callTool(t, "http://127.0.0.1:0", map[string]any{})
	assert.True(t, res.IsError)
	assert.Equal(t, "id is required", text(t, res))
}

func TestFormatChannel_Empty(t *testing.T) {
	out := formatChannel(&models.ChannelResponse{Results: []models.ResultItem{}, EstimatedResults: "0"})
	assert.Equal(t, "No videos could be extracted from the channel page.\n", out)
}
