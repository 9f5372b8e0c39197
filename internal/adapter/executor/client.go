package executor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"gitlab.com/codebench-2025.net/internal/config"
	"gitlab.com/codebench-2025.net/internal/core/ports/primary"
	"gitlab.com/codebench-2025.net/internal/core/ports/secondary"
	"gitlab.com/codebench-2025.net/internal/domain"
)

const (
	runPath      = "/api/execute"
	batchRunPath = "/api/execute/batch"
)

var _ secondary.CodeExecutor = (*Client)(nil)

// Client implements the CodeExecutor interface over the execution service's
// HTTP JSON API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     primary.Logger
}

// NewClient creates a new execution service client
func NewClient(cfg *config.ExecutorConfig, logger primary.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		logger:     logger,
	}
}

// Execute submits the program and cases, choosing the batch endpoint when
// there is more than one case. The service preserves submission order in
// its results; so does this mapping.
func (c *Client) Execute(ctx context.Context, req *domain.ExecutionRequest) (*domain.ExecutionOutcome, error) {
	cases := make([]executeTestCase, len(req.Cases))
	for i, tc := range req.Cases {
		cases[i] = executeTestCase{
			Input:          tc.Input,
			ExpectedOutput: tc.ExpectedOutput,
			IsHidden:       tc.IsHidden,
		}
	}

	body, err := json.Marshal(executeRequest{
		Code:          req.Code,
		Language:      req.Language,
		TestCases:     cases,
		EntryFunction: req.EntryFunction,
		DriverCode:    req.DriverCode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal execution request: %w", err)
	}

	path := runPath
	if len(req.Cases) > 1 {
		path = batchRunPath
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build execution request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	c.logger.Debug("Submitting run", "cases", len(req.Cases), "language", req.Language)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("execution service call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("Execution service returned non-success", "status", resp.StatusCode)
		return nil, fmt.Errorf("execution service returned status %d: %s", resp.StatusCode, snippet)
	}

	var decoded executeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode execution response: %w", err)
	}

	results := make([]domain.CaseResult, len(decoded.TestResults))
	for i, r := range decoded.TestResults {
		results[i] = domain.CaseResult{
			Status:          domain.RunStatus(r.Status),
			ActualOutput:    r.ActualOutput,
			ExpectedOutput:  r.ExpectedOutput,
			ErrorMessage:    r.ErrorMessage,
			ExecutionTimeMs: r.ExecutionTimeMs,
			MemoryKB:        r.MemoryKB,
		}
	}

	return &domain.ExecutionOutcome{
		CaseResults:     results,
		ExecutionTimeMs: decoded.ExecutionTimeMs,
	}, nil
}
