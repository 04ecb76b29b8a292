package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

// DefaultServerURL is where a locally served model is expected when no
// URL is configured.
const DefaultServerURL = "http://localhost:8787"

// Server is a Batch implementation talking to a local model server that
// exposes the translate_batch contract over HTTP JSON. Calls run through a
// circuit breaker so a wedged backend fails fast instead of stacking up
// timeouts behind the interactive caller.
type Server struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

// NewServer creates a client for the serving process at baseURL.
func NewServer(baseURL string, timeout time.Duration) *Server {
	if baseURL == "" {
		baseURL = DefaultServerURL
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Server{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "translate_batch",
			MaxRequests: 1,
			Timeout:     30 * time.Second,
		}),
	}
}

type batchRequest struct {
	Sequences [][]string `json:"sequences"`
	Options
}

type batchResponse struct {
	Results []struct {
		Hypotheses [][]string `json:"hypotheses"`
	} `json:"results"`
}

// TranslateBatch issues one POST /translate_batch call covering all
// sequences and returns the first-ranked hypothesis per sequence.
func (s *Server) TranslateBatch(ctx context.Context, seqs [][]string, opts Options) ([][]string, error) {
	if len(seqs) == 0 {
		return nil, nil
	}

	body, err := json.Marshal(batchRequest{Sequences: seqs, Options: opts})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal batch request: %w", err)
	}

	out, err := s.breaker.Execute(func() (interface{}, error) {
		return s.post(ctx, body)
	})
	if err != nil {
		return nil, err
	}
	resp := out.(*batchResponse)

	if len(resp.Results) != len(seqs) {
		return nil, fmt.Errorf("backend returned %d results for %d sequences", len(resp.Results), len(seqs))
	}
	hyps := make([][]string, len(seqs))
	for i, r := range resp.Results {
		if len(r.Hypotheses) > 0 {
			hyps[i] = r.Hypotheses[0]
		}
	}
	return hyps, nil
}

func (s *Server) post(ctx context.Context, body []byte) (*batchResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/translate_batch", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("translate_batch call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("translate_batch returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var parsed batchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode batch response: %w", err)
	}
	return &parsed, nil
}

// IsAvailable probes the server's health endpoint.
func (s *Server) IsAvailable(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("model server unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("model server health check returned %d", resp.StatusCode)
	}
	return nil
}
