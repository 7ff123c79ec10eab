package hintd_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-2048/internal/analysis"
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/hintd"
)

func newHandler(a analysis.Analyzer) http.Handler {
	return hintd.NewRouter(hintd.RouterConfig{
		Analyzer: a,
		Timeout:  time.Second,
		Logger:   log.New(io.Discard),
	})
}

func request(h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	switch b := body.(type) {
	case nil:
		reqBody = bytes.NewBuffer(nil)
	case string:
		reqBody = bytes.NewBufferString(b)
	default:
		data, _ := json.Marshal(b)
		reqBody = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

var board = analysis.Request{
	BoardState: [][]int{{2, 2, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
	Score:      8,
}

func TestHealth(t *testing.T) {
	rr := request(newHandler(analysis.NewLocal()), http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestAnalyze(t *testing.T) {
	rr := request(newHandler(analysis.NewLocal()), http.MethodPost, "/api/v1/analyze", board)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp analysis.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.ShouldShowAnalysis)
	assert.Contains(t, resp.Analysis, "2+2")
}

func TestAnalyzeProviderFailureReturnsFallback(t *testing.T) {
	failing := analysis.AnalyzerFunc(func(context.Context, analysis.Request) (analysis.Response, error) {
		return analysis.Response{}, errors.New("upstream down")
	})

	rr := request(newHandler(failing), http.MethodPost, "/api/v1/analyze", board)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp analysis.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, analysis.Fallback(), resp)
}

func TestAnalyzeRejectsBadInput(t *testing.T) {
	h := newHandler(analysis.NewLocal())

	tests := []struct {
		name string
		body any
	}{
		{"not json", "{board"},
		{"ragged", analysis.Request{BoardState: [][]int{{2, 2}, {2}}}},
		{"odd value", analysis.Request{BoardState: [][]int{{3, 0}, {0, 0}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := request(h, http.MethodPost, "/api/v1/analyze", tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)

			var body struct {
				Error hintd.APIError `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, hintd.CodeInvalidRequest, body.Error.Code)
		})
	}
}

func TestAnalyzeWrongMethod(t *testing.T) {
	rr := request(newHandler(analysis.NewLocal()), http.MethodGet, "/api/v1/analyze", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestRecoveryHandlesPanic(t *testing.T) {
	panicking := analysis.AnalyzerFunc(func(context.Context, analysis.Request) (analysis.Response, error) {
		panic("boom")
	})

	rr := request(newHandler(panicking), http.MethodPost, "/api/v1/analyze", board)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), hintd.CodeInternal)
}

func TestRemoteClientAgainstServer(t *testing.T) {
	srv := httptest.NewServer(newHandler(analysis.NewLocal()))
	defer srv.Close()

	client := &analysis.RemoteClient{BaseURL: srv.URL}
	resp, err := client.Analyze(context.Background(), board)
	require.NoError(t, err)
	assert.Contains(t, resp.Analysis, "Try Left")
}

func TestServerServeAndShutdown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	cfg := config.DefaultT2048Config().Server
	srv := hintd.NewServer(newHandler(analysis.NewLocal()), cfg, log.New(io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, l) }()

	resp, err := http.Get("http://" + l.Addr().String() + "/api/v1/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
