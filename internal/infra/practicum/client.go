// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	"homework_status_bot/internal/domain/homework"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

	defaultTimeout = 30 * time.Second
	maxErrorBody   = 200
)

// Client is an HTTP client for the Practicum homework statuses API.
type Client struct {
	client   *resty.Client
	endpoint string
	now      func() time.Time
}

// NewClient creates a client authorised with the given OAuth token.
// A zero timeout falls back to the default one.
func NewClient(endpoint, token string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Authorization", "OAuth "+token).
		SetHeader("Accept", "application/json")
	return &Client{client: client, endpoint: endpoint, now: time.Now}
}

// GetHomeworkStatuses returns the decoded API answer for homeworks updated
// since fromDate (Unix seconds). A zero fromDate means "now".
// The answer is left untyped; homework.CheckResponse validates it.
func (c *Client) GetHomeworkStatuses(ctx context.Context, fromDate int64) (any, error) {
	if fromDate == 0 {
		fromDate = c.now().Unix()
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("from_date", strconv.FormatInt(fromDate, 10)).
		Get(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", homework.ErrFetch, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d: %s", homework.ErrFetch, resp.StatusCode(), truncate(resp.String()))
	}

	var answer any
	if err := json.Unmarshal(resp.Body(), &answer); err != nil {
		return nil, fmt.Errorf("%w: decode response body: %w", homework.ErrSchema, err)
	}
	return answer, nil
}

func truncate(s string) string {
	if len(s) <= maxErrorBody {
		return s
	}
	cut := maxErrorBody
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
