package analysis

import (
	"context"
	"net/http"
	"strings"
)

// AnalyzePath is the hintd endpoint a RemoteClient calls.
const AnalyzePath = "/api/v1/analyze"

// RemoteClient asks a hintd server.
type RemoteClient struct {
	BaseURL string
	HTTP    *http.Client
}

// Analyze implements Analyzer.
func (c *RemoteClient) Analyze(ctx context.Context, req Request) (Response, error) {
	if err := req.Validate(); err != nil {
		return Response{}, err
	}

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	var out Response
	url := strings.TrimRight(c.BaseURL, "/") + AnalyzePath
	if err := postJSON(ctx, client, url, nil, req, &out); err != nil {
		return Response{}, err
	}
	return out, nil
}
