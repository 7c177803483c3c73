package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"nko_site_go/models"
)

// LeadRequestError describes a lead the endpoint did not accept.
// It matches ErrLeadRequestFailed with errors.Is.
type LeadRequestError struct {
	StatusCode  int    // HTTP status, 0 if no response was received
	ServerError string // "error" field of the response body, if any
	Err         error  // transport or decoding failure, if any
}

func (e *LeadRequestError) Error() string {
	msg := ErrLeadRequestFailed.Error()
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.StatusCode)
	}
	if e.ServerError != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.ServerError)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *LeadRequestError) Unwrap() error { return e.Err }

func (e *LeadRequestError) Is(target error) bool { return target == ErrLeadRequestFailed }

// maxLeadReplySize bounds how much of the endpoint's reply is read
const maxLeadReplySize = 1 << 20

// LeadClient posts submissions to the lead endpoint as JSON
type LeadClient struct {
	endpoint   string
	httpClient *http.Client
}

// NewLeadClient creates a client for endpoint. A zero timeout leaves the
// request bounded only by its context.
func NewLeadClient(endpoint string, timeout time.Duration) *LeadClient {
	return &LeadClient{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Endpoint returns the URL submissions are posted to
func (c *LeadClient) Endpoint() string {
	return c.endpoint
}

// Send performs one POST of lead. The response body is decoded before the
// status is checked; the lead is accepted only for a 2xx status with a truthy
// "success" field.
func (c *LeadClient) Send(ctx context.Context, lead models.LeadSubmission) (*models.LeadResponse, error) {
	body, err := json.Marshal(lead)
	if err != nil {
		return nil, &LeadRequestError{Err: fmt.Errorf("failed to encode lead: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &LeadRequestError{Err: fmt.Errorf("failed to build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &LeadRequestError{Err: fmt.Errorf("failed to reach lead endpoint: %w", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxLeadReplySize))
	if err != nil {
		return nil, &LeadRequestError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("failed to read lead response: %w", err),
		}
	}

	// The whole body must be one JSON value; trailing bytes fail the decode
	var result models.LeadResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &LeadRequestError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("failed to decode lead response: %w", err),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || !result.Success {
		return &result, &LeadRequestError{StatusCode: resp.StatusCode, ServerError: result.Error}
	}

	return &result, nil
}
