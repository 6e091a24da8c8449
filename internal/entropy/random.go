// Package entropy provides true-random map seeds via random.org.
// Falls back to crypto/rand when the API is unavailable.
package entropy

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Client provides true random seeds from random.org with a local pool.
type Client struct {
	apiKey string
	client *http.Client

	mu   sync.Mutex
	pool []int64
}

// NewClient creates a random.org client. Returns nil if apiKey is empty.
func NewClient(apiKey string) *Client {
	if apiKey == "" {
		return nil
	}
	return &Client{
		apiKey: apiKey,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Seed returns a non-zero random int64. Uses the pool, refilling from
// random.org when low. Falls back to crypto/rand on API failure.
func (c *Client) Seed() int64 {
	if c == nil {
		return cryptoSeed()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.pool) < 4 {
		c.refill()
	}

	if len(c.pool) == 0 {
		return cryptoSeed()
	}

	val := c.pool[0]
	c.pool = c.pool[1:]
	if val == 0 {
		return cryptoSeed()
	}
	return val
}

func (c *Client) refill() {
	// random.org integers top out at 1e9, so pairs are combined into one
	// 60-bit seed each.
	req := map[string]any{
		"jsonrpc": "2.0",
		"method":  "generateIntegers",
		"params": map[string]any{
			"apiKey": c.apiKey,
			"n":      32,
			"min":    0,
			"max":    1000000000,
		},
		"id": 1,
	}

	body, err := json.Marshal(req)
	if err != nil {
		slog.Debug("random.org marshal failed", "error", err)
		return
	}

	resp, err := c.client.Post("https://api.random.org/json-rpc/4/invoke", "application/json", bytes.NewReader(body))
	if err != nil {
		slog.Debug("random.org fetch failed", "error", err)
		return
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Debug("random.org read failed", "error", err)
		return
	}

	var result struct {
		Result struct {
			Random struct {
				Data []int64 `json:"data"`
			} `json:"random"`
		} `json:"result"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.Unmarshal(respBody, &result); err != nil {
		slog.Debug("random.org parse failed", "error", err)
		return
	}

	if result.Error != nil {
		slog.Debug("random.org API error", "error", result.Error.Message)
		return
	}

	data := result.Result.Random.Data
	for i := 0; i+1 < len(data); i += 2 {
		c.pool = append(c.pool, data[i]<<30|data[i+1])
	}
	slog.Debug("random.org pool refilled", "count", len(data)/2)
}

// cryptoSeed generates a non-zero random int64 using crypto/rand as fallback.
func cryptoSeed() int64 {
	var buf [8]byte
	_, err := rand.Read(buf[:])
	if err != nil {
		// This should never happen but return a fixed seed rather than 0,
		// which callers treat as "pick one for me".
		return 1
	}
	// Keep it positive and non-zero.
	n := int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
	if n == 0 {
		return 1
	}
	return n
}

// CryptoSeed returns a random seed using crypto/rand (no API needed).
func CryptoSeed() int64 {
	return cryptoSeed()
}

// Enabled returns true if the client has a valid API key.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// SeedFromSource returns a random seed from the client if available, or
// crypto/rand.
func SeedFromSource(c *Client) int64 {
	if c != nil && c.Enabled() {
		return c.Seed()
	}
	return cryptoSeed()
}
