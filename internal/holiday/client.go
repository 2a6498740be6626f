package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// ClientConfig configures the external holiday-list source.
type ClientConfig struct {
	APIURL       string
	FetchTimeout time.Duration
}

// Client fetches legal holidays from the external source. Callers must treat
// every failure as recoverable; the resolver substitutes the hardcoded
// calendar on any error.
type Client struct {
	apiURL     string
	httpClient *http.Client
	logger     *slog.Logger
}

type holidayEntry struct {
	HolidayName string   `json:"holidayName"`
	Dates       []string `json:"dates"`
}

func NewClient(config ClientConfig, logger *slog.Logger) *Client {
	timeout := config.FetchTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		apiURL:     config.APIURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// FetchHolidays returns the remote holiday dates for a year.
func (c *Client) FetchHolidays(ctx context.Context, year int) (Set, error) {
	if c.apiURL == "" {
		return nil, fmt.Errorf("holiday source not configured")
	}

	url := fmt.Sprintf("%s?year=%d", c.apiURL, year)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build holiday request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch holidays: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("holiday source returned status %d", resp.StatusCode)
	}

	var entries []holidayEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode holiday response: %w", err)
	}

	set := make(Set)
	for _, entry := range entries {
		for _, raw := range entry.Dates {
			date, err := time.Parse(DateLayout, raw)
			if err != nil {
				c.logger.Warn("skipping unparseable holiday date",
					"holiday", entry.HolidayName,
					"date", raw)
				continue
			}
			set.Add(date)
		}
	}

	if len(set) == 0 {
		return nil, fmt.Errorf("holiday source returned no dates for %d", year)
	}

	return set, nil
}
