package greenapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/xavierca1/greenapi-console/internal/entity"
	"github.com/xavierca1/greenapi-console/internal/infra/http/middleware"
)

// RequestTimeout bounds every call; a timeout surfaces as a transport error.
const RequestTimeout = 15 * time.Second

type Client struct {
	http *http.Client
}

func NewClient() *Client {
	return &Client{
		http: &http.Client{Timeout: RequestTimeout},
	}
}

// NewClientWithHTTP lets tests point the client at an httptest server
// transport. A nil client gets the default timeout.
func NewClientWithHTTP(h *http.Client) *Client {
	if h == nil {
		return NewClient()
	}
	return &Client{http: h}
}

// BuildURL follows the gateway convention
// {apiUrl}/waInstance{idInstance}/{method}/{apiTokenInstance}.
func BuildURL(c entity.Credentials, method string) string {
	base := strings.TrimRight(c.APIURL, "/")
	return fmt.Sprintf("%s/waInstance%s/%s/%s", base, c.IDInstance, method, c.APITokenInstance)
}

// GetSettings returns the settings body exactly as the gateway sent it.
// New or retyped fields pass through untouched.
func (c *Client) GetSettings(ctx context.Context, creds entity.Credentials) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.do(ctx, creds, http.MethodGet, MethodGetSettings, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetStateInstance(ctx context.Context, creds entity.Credentials) (*StateInstanceResponse, error) {
	var out StateInstanceResponse
	if err := c.do(ctx, creds, http.MethodGet, MethodGetStateInstance, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SendMessage(ctx context.Context, creds entity.Credentials, input SendMessageRequest) (*SendMessageResponse, error) {
	var out SendMessageResponse
	if err := c.do(ctx, creds, http.MethodPost, MethodSendMessage, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SendFileByURL(ctx context.Context, creds entity.Credentials, input SendFileByURLRequest) (*SendFileByURLResponse, error) {
	var out SendFileByURLResponse
	if err := c.do(ctx, creds, http.MethodPost, MethodSendFileByURL, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, creds entity.Credentials, verb, method string, payload interface{}, out interface{}) (err error) {
	start := time.Now()
	defer func() {
		middleware.RecordGreenAPICall(method, outcome(err), time.Since(start))
	}()

	// 1. Body
	var body io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal %s payload: %w", method, err)
		}
		body = bytes.NewReader(jsonBody)
	}

	// 2. Request
	req, err := http.NewRequestWithContext(ctx, verb, BuildURL(creds, method), body)
	if err != nil {
		return fmt.Errorf("create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	// 3. Send
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("❌ GREEN-API: transport failure on %s (instance %s): %s", method, creds.IDInstance, transportText(err))
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", method, err)
	}

	// 4. Non-2xx
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("❌ GREEN-API: %s returned status %d: %s", method, resp.StatusCode, string(respBody))
		return &HTTPError{StatusCode: resp.StatusCode, Body: respBody}
	}

	// 5. Decode
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}

	log.Printf("✅ GREEN-API: %s ok (instance %s)", method, creds.IDInstance)
	return nil
}

func outcome(err error) string {
	if err == nil {
		return "success"
	}
	if _, ok := AsHTTPError(err); ok {
		return "http_error"
	}
	return "transport_error"
}
