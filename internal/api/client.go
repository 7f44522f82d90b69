package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Client talks to the catalog backend. All list fetches go through FetchList
// and all mutations through send, so status handling and decode leniency
// live in exactly one place.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// New creates a Client for the given base URL. Every request carries the
// bounded timeout; there is no retry policy.
func New(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// BaseURL returns the backend base URL, used to resolve relative image paths.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchList issues a GET against path and returns the decoded records.
// A non-2xx status fails with a *RemoteError; a 2xx body that is neither a
// bare JSON array nor a {"data": [...]} envelope decodes to an empty list
// rather than failing.
func (c *Client) FetchList(ctx context.Context, path string) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newRemoteError(resp.StatusCode, body)
	}

	records := decodeList(body)
	c.log.Debug("fetched list", slog.String("path", path), slog.Int("records", len(records)))
	return records, nil
}

// send issues a JSON mutation. A non-2xx status fails with a *RemoteError;
// callers fold 409/404 into their own semantics via IsConflict/IsNotFound.
func (c *Client) send(ctx context.Context, method, path string, payload any) error {
	_, err := c.sendForBody(ctx, method, path, payload)
	return err
}

func (c *Client) sendForBody(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s: %w", method, path, err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newRemoteError(resp.StatusCode, body)
	}
	return body, nil
}

func newRemoteError(status int, body []byte) *RemoteError {
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = "request failed"
	}
	return &RemoteError{Status: status, Body: msg}
}

// decodeList accepts a bare JSON array or an object with a "data" array.
// Unparseable bodies, other shapes and non-object array entries all decode
// to nothing; a malformed list endpoint is an empty list, never an error.
func decodeList(body []byte) []Record {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}

	if trimmed[0] == '[' {
		var entries []json.RawMessage
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil
		}
		return decodeEntries(entries)
	}

	var envelope struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil
	}
	return decodeEntries(envelope.Data)
}

func decodeEntries(entries []json.RawMessage) []Record {
	var records []Record
	for _, raw := range entries {
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records
}
