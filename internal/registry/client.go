package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://prs.ms.gov.pl/krs/openApi"

// Client is a rate-limited HTTP client for the KRS open API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	retryDelay time.Duration
}

// NewClient builds a client against baseURL (DefaultBaseURL when empty),
// throttled to requestsPerSecond outbound calls.
func NewClient(baseURL string, requestsPerSecond float64) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if requestsPerSecond <= 0 {
		requestsPerSecond = 5
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		retryDelay: 5 * time.Second,
	}
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("registry returned status %d", e.code)
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	err := c.do(ctx, endpoint, query, out)
	if se, ok := err.(*statusError); ok && se.code == http.StatusTooManyRequests {
		log.Printf("Registry rate limit exceeded, retrying %s after %s", endpoint, c.retryDelay)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.retryDelay):
		}
		err = c.do(ctx, endpoint, query, out)
	}
	return err
}

func (c *Client) do(ctx context.Context, endpoint string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	u := c.baseURL + "/" + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("registry request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &statusError{code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode registry response: %w", err)
	}
	return nil
}

func (c *Client) SearchEntities(ctx context.Context, params SearchParams) (*SearchResult, error) {
	if params.Empty() {
		return nil, fmt.Errorf("at least one search parameter is required")
	}

	q := url.Values{}
	if params.KRS != "" {
		q.Set("krs", params.KRS)
	}
	if params.NIP != "" {
		q.Set("nip", params.NIP)
	}
	if params.REGON != "" {
		q.Set("regon", params.REGON)
	}
	if params.Name != "" {
		q.Set("nazwa", params.Name)
	}

	var result SearchResult
	if err := c.get(ctx, "podmiot/szukaj", q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) EntityDetails(ctx context.Context, krs string) (*Entity, error) {
	var entity Entity
	if err := c.get(ctx, "podmiot/"+krs, nil, &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

// EntitySection fetches one section (1-6) of an entity's register extract.
func (c *Client) EntitySection(ctx context.Context, krs string, section int) (map[string]any, error) {
	if section < 1 || section > 6 {
		return nil, fmt.Errorf("section must be between 1 and 6, got %d", section)
	}
	var data map[string]any
	if err := c.get(ctx, fmt.Sprintf("podmiot/%s/dzial/%d", krs, section), nil, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func (c *Client) Representatives(ctx context.Context, krs string) ([]Representative, error) {
	var resp representativesResponse
	if err := c.get(ctx, "podmiot/"+krs+"/reprezentanci", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Representatives, nil
}

func (c *Client) Shareholders(ctx context.Context, krs string) ([]Shareholder, error) {
	var resp shareholdersResponse
	if err := c.get(ctx, "podmiot/"+krs+"/wspolnicy", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Shareholders, nil
}

func (c *Client) BeneficialOwners(ctx context.Context, krs string) ([]BeneficialOwner, error) {
	var resp beneficialOwnersResponse
	if err := c.get(ctx, "podmiot/"+krs+"/beneficjenci", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Beneficiaries, nil
}
