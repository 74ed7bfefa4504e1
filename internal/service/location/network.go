package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/trijoshh/attendance-backend-go/internal/domain/location"
)

type ipLocator struct {
	client   *http.Client
	endpoint string
	now      func() time.Time
}

// NewIPLocator creates a coarse network locator backed by an ipapi-style
// JSON endpoint. A nil client falls back to a short-timeout default.
func NewIPLocator(client *http.Client, endpoint string) location.NetworkLocator {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &ipLocator{client: client, endpoint: endpoint, now: time.Now}
}

func (l *ipLocator) Locate(ctx context.Context) (location.Fix, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint, nil)
	if err != nil {
		return location.Fix{}, fmt.Errorf("build ip location request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return location.Fix{}, fmt.Errorf("request ip location: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return location.Fix{}, fmt.Errorf("ip location endpoint returned %d", resp.StatusCode)
	}

	var body struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return location.Fix{}, fmt.Errorf("decode ip location response: %w", err)
	}

	return location.Fix{
		Latitude:  body.Latitude,
		Longitude: body.Longitude,
		Accuracy:  location.NetworkAccuracyMeters,
		Timestamp: l.now(),
	}, nil
}
