package analysis

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBoard = Request{BoardState: [][]int{{2, 2}, {0, 4}}, Score: 40}

func newChatServer(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body chatRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&body)) {
			return
		}
		assert.Equal(t, "tiny-model", body.Model)
		if !assert.Len(t, body.Messages, 2) {
			return
		}
		assert.Equal(t, "system", body.Messages[0].Role)
		assert.Contains(t, body.Messages[1].Content, "Score: 40")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newChatClient(url string) *ChatClient {
	return &ChatClient{BaseURL: url + "/v1/", Model: "tiny-model", APIKey: "test-key"}
}

func TestChatClientAnalyze(t *testing.T) {
	srv := newChatServer(t, `{"analysis":"Merge the 2s to the left.","shouldShowAnalysis":true}`, http.StatusOK)

	resp, err := newChatClient(srv.URL).Analyze(context.Background(), testBoard)
	require.NoError(t, err)
	assert.Equal(t, "Merge the 2s to the left.", resp.Analysis)
	assert.True(t, resp.ShouldShowAnalysis)
}

func TestChatClientAcceptsFencedReply(t *testing.T) {
	srv := newChatServer(t, "```json\n{\"analysis\":\"Go up.\",\"shouldShowAnalysis\":false}\n```", http.StatusOK)

	resp, err := newChatClient(srv.URL).Analyze(context.Background(), testBoard)
	require.NoError(t, err)
	assert.Equal(t, "Go up.", resp.Analysis)
	assert.False(t, resp.ShouldShowAnalysis)
}

func TestChatClientErrors(t *testing.T) {
	t.Run("bad status", func(t *testing.T) {
		srv := newChatServer(t, "", http.StatusTooManyRequests)
		_, err := newChatClient(srv.URL).Analyze(context.Background(), testBoard)

		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusTooManyRequests, se.Code)
	})

	t.Run("not json", func(t *testing.T) {
		srv := newChatServer(t, "merge left", http.StatusOK)
		_, err := newChatClient(srv.URL).Analyze(context.Background(), testBoard)
		assert.Error(t, err)
	})

	t.Run("empty analysis", func(t *testing.T) {
		srv := newChatServer(t, `{"analysis":"  ","shouldShowAnalysis":true}`, http.StatusOK)
		_, err := newChatClient(srv.URL).Analyze(context.Background(), testBoard)
		assert.Error(t, err)
	})

	t.Run("missing key", func(t *testing.T) {
		c := &ChatClient{BaseURL: "http://127.0.0.1:0", Model: "m"}
		_, err := c.Analyze(context.Background(), testBoard)
		assert.Error(t, err)
	})

	t.Run("bad board", func(t *testing.T) {
		c := newChatClient("http://127.0.0.1:0")
		_, err := c.Analyze(context.Background(), Request{BoardState: [][]int{{5}}})
		assert.ErrorIs(t, err, ErrBadRequest)
	})
}
