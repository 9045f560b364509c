package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stayhub/payment-service/config"
	"github.com/stayhub/payment-service/internal/models"
)

// ReservationClient issues the internal status update against the
// reservation service. The update is idempotent on the reservation side
// (setting CONFIRMED on an already CONFIRMED reservation is a no-op), which
// is what makes the limited retry safe.
type ReservationClient struct {
	baseURL     string
	httpClient  *http.Client
	retryConfig config.RetryConfig
}

func NewReservationClient(baseURL string, timeout time.Duration, retryConfig config.RetryConfig) *ReservationClient {
	if retryConfig.MaxAttempts == 0 {
		retryConfig.MaxAttempts = 3
	}
	if retryConfig.BaseDelay == 0 {
		retryConfig.BaseDelay = 200 * time.Millisecond
	}
	if retryConfig.MaxDelay == 0 {
		retryConfig.MaxDelay = 2 * time.Second
	}

	return &ReservationClient{
		baseURL:     baseURL,
		httpClient:  &http.Client{Timeout: timeout},
		retryConfig: retryConfig,
	}
}

// UpdateStatus PATCHes the reservation to the given status id and returns the
// updated reservation. Transport errors and non-2xx answers are classified as
// ErrReservationUnavailable after the retry budget is spent.
func (c *ReservationClient) UpdateStatus(ctx context.Context, reservationID int64, statusID int) (*models.Reservation, error) {
	body, err := json.Marshal(map[string]int{"statusId": statusID})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/api/reservations/internal/%d", c.baseURL, reservationID)

	var lastErr error
	for attempt := 0; attempt < c.retryConfig.MaxAttempts; attempt++ {
		reservation, err := c.patch(ctx, url, body)
		if err == nil {
			if attempt > 0 {
				logrus.Infof("Reservation status update succeeded after %d attempts", attempt+1)
			}
			return reservation, nil
		}

		lastErr = err

		if attempt == c.retryConfig.MaxAttempts-1 {
			break
		}

		delay := calculateBackoff(attempt, c.retryConfig)
		logrus.Warnf("Reservation update retry %d/%d for reservation %d after %v: %v",
			attempt+1, c.retryConfig.MaxAttempts, reservationID, delay, err)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s", models.ErrReservationUnavailable, ctx.Err().Error())
		}
	}

	return nil, fmt.Errorf("%w: %s", models.ErrReservationUnavailable, lastErr.Error())
}

func (c *ReservationClient) patch(ctx context.Context, url string, body []byte) (*models.Reservation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}

	var reservation models.Reservation
	if err := json.NewDecoder(resp.Body).Decode(&reservation); err != nil {
		return nil, fmt.Errorf("error decoding reservation response: %w", err)
	}

	return &reservation, nil
}
