// internal/snapshot/httpsource/client.go
package httpsource

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/highlite-tools/spawnwatch/internal/snapshot"
)

// Client implements snapshot.Source over the game client's local
// entity endpoint. This adapter is shape-only: it fetches one JSON
// document and hands loose records to the snapshot decoder.
type Client struct {
	endpoint string
	http     *http.Client
}

// Config is minimal transport config.
type Config struct {
	Endpoint string
	Timeout  time.Duration
}

// New creates an entity source client. No connection is made here;
// every poll is an independent request, so an endpoint that is down
// at startup can still come up on a later tick.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("httpsource: endpoint required")
	}
	if cfg.Timeout <= 0 {
		return nil, errors.New("httpsource: timeout must be > 0")
	}
	return &Client{
		endpoint: cfg.Endpoint,
		http:     &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Entities performs exactly one fetch of the live registry.
// All-or-nothing: any transport or decode failure fails the fetch.
func (c *Client) Entities() ([]snapshot.Entity, error) {
	resp, err := c.http.Get(c.endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpsource: unexpected status %d", resp.StatusCode)
	}

	raws, err := decodeBody(resp.Body)
	if err != nil {
		return nil, err
	}
	return snapshot.DecodeAll(raws), nil
}

// decodeBody accepts either a bare JSON array of records or an
// object wrapping the array under "entities" or "npcs".
func decodeBody(r io.Reader) ([]map[string]any, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}

	switch v := doc.(type) {
	case []any:
		return toRecords(v), nil
	case map[string]any:
		for _, key := range []string{"entities", "npcs"} {
			if arr, ok := v[key].([]any); ok {
				return toRecords(arr), nil
			}
		}
		return nil, errors.New("httpsource: no entity array in response")
	default:
		return nil, errors.New("httpsource: unexpected response shape")
	}
}

func toRecords(arr []any) []map[string]any {
	out := make([]map[string]any, 0, len(arr))
	for _, item := range arr {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
