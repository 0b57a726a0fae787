package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"smartbiz-confirm/internal/domain"
)

// ConfirmClient calls the hosted confirmation generation service. The service
// receives the full order input as prompt context and answers with a
// confirmation ID and a customer-facing message. Callers treat any failure as
// a signal to fall back to local generation.
type ConfirmClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewConfirmClient(baseURL string, timeout time.Duration) *ConfirmClient {
	return &ConfirmClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *ConfirmClient) GenerateConfirmation(ctx context.Context, in domain.OrderInput) (*domain.OrderResult, error) {
	if c.baseURL == "" {
		return nil, errors.New("confirmation service URL not configured")
	}

	body, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/order-confirmations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("confirmation service returned status %d", resp.StatusCode)
	}

	var result domain.OrderResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	if result.ConfirmationID == "" || result.Message == "" {
		return nil, errors.New("confirmation service returned a malformed result")
	}

	return &result, nil
}
