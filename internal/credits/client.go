// Package credits fetches the decorative social-link footer from a
// remote endpoint. The call is fire-and-forget: failure is logged by
// the caller and the footer simply stays empty.
package credits

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"todotui/internal/model"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	endpoint string
	token    string
	httpc    *http.Client
}

func NewClient(endpoint, token string) *Client {
	return &Client{
		endpoint: endpoint,
		token:    token,
		httpc:    &http.Client{Timeout: defaultTimeout},
	}
}

// SetHTTPClient swaps the underlying transport, mainly for tests.
func (c *Client) SetHTTPClient(httpc *http.Client) {
	if httpc != nil {
		c.httpc = httpc
	}
}

// Fetch issues a single authenticated POST with an empty JSON body and
// decodes the {names, links} payload. Any non-200 status is an error.
func (c *Client) Fetch(ctx context.Context) (model.SocialLinks, error) {
	if strings.TrimSpace(c.endpoint) == "" {
		return model.SocialLinks{}, fmt.Errorf("credits: no endpoint configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader("{}"))
	if err != nil {
		return model.SocialLinks{}, fmt.Errorf("credits: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return model.SocialLinks{}, fmt.Errorf("credits: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.SocialLinks{}, fmt.Errorf("credits: unexpected status %d", resp.StatusCode)
	}

	var links model.SocialLinks
	if err := json.NewDecoder(resp.Body).Decode(&links); err != nil {
		return model.SocialLinks{}, fmt.Errorf("credits: decode response: %w", err)
	}
	return links, nil
}
