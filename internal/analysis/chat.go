package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ChatClient asks an OpenAI-compatible chat completions endpoint.
type ChatClient struct {
	BaseURL string
	Model   string
	APIKey  string
	HTTP    *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat map[string]any `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Analyze implements Analyzer.
func (c *ChatClient) Analyze(ctx context.Context, req Request) (Response, error) {
	if err := req.Validate(); err != nil {
		return Response{}, err
	}
	if c.APIKey == "" {
		return Response{}, errors.New("analysis: missing API key")
	}

	prompt, err := renderPrompt(req)
	if err != nil {
		return Response{}, fmt.Errorf("analysis: render prompt: %w", err)
	}

	body := chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature:    0.3,
		ResponseFormat: map[string]any{"type": "json_object"},
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.APIKey)

	var out chatResponse
	url := strings.TrimRight(c.BaseURL, "/") + "/chat/completions"
	if err := postJSON(ctx, c.client(), url, header, body, &out); err != nil {
		return Response{}, err
	}
	if len(out.Choices) == 0 {
		return Response{}, errors.New("analysis: empty completion")
	}

	return parseReply(out.Choices[0].Message.Content)
}

func (c *ChatClient) client() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

// parseReply decodes the model's JSON answer, tolerating a code fence.
func parseReply(content string) (Response, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var resp Response
	if err := json.Unmarshal([]byte(content), &resp); err != nil {
		return Response{}, fmt.Errorf("analysis: decode model reply: %w", err)
	}
	if strings.TrimSpace(resp.Analysis) == "" {
		return Response{}, errors.New("analysis: model returned no analysis")
	}
	return resp, nil
}
