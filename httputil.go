package cartera

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// jwget fetches url and decodes the JSON payload into a generic value
// suitable for jsonpath queries.
func jwget(ctx context.Context, client *http.Client, url string) (any, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("GET %s: invalid JSON: %w", url, err)
	}
	return v, nil
}
