package bravia

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"braviactl/internal/logger"
)

// BraviaClient is the HTTP transport for a single Sony Bravia TV. It issues
// one request per call and blocks until the response arrives; callers that
// need concurrency use one client per TV.
type BraviaClient struct {
	httpClient *http.Client
	host       string
	credential string
	debug      bool
	logger     zerolog.Logger
}

// Option configures a BraviaClient.
type Option func(*BraviaClient)

// WithCredential sets the auth cookie attached to command requests.
func WithCredential(credential string) Option {
	return func(c *BraviaClient) {
		c.credential = credential
	}
}

// WithTimeout overrides the default 30s HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *BraviaClient) {
		c.httpClient.Timeout = d
	}
}

// WithDebug enables request/response debug logging.
func WithDebug(debug bool) Option {
	return func(c *BraviaClient) {
		c.debug = debug
	}
}

// NewBraviaClient creates a new Bravia client instance for the given host.
func NewBraviaClient(host string, opts ...Option) *BraviaClient {
	client := &BraviaClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		host:   host,
		logger: logger.New(),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.debug {
		logger.SetLevel("debug")
	}

	return client
}

// Host returns the address this client talks to.
func (c *BraviaClient) Host() string {
	return c.host
}

// Credential returns the auth cookie currently attached to requests, or ""
// when the client is unauthenticated.
func (c *BraviaClient) Credential() string {
	return c.credential
}

// SetCredential replaces the auth cookie attached to command requests.
func (c *BraviaClient) SetCredential(credential string) {
	c.credential = credential
}

// RegisterRequest sends an actRegister request to the TV's access control
// endpoint. With an empty pin the request is unauthenticated; the TV answers
// 200 when this client is already registered, or 401 after putting a PIN on
// screen. With a pin the request carries HTTP Basic auth with an empty
// username, and a 200 response yields the session cookie that authorizes all
// subsequent commands.
func (c *BraviaClient) RegisterRequest(clientID, nickname, pin string) (string, error) {
	payload := CreatePayload(13, ActRegister, []interface{}{
		registerClient{
			ClientID: clientID,
			Nickname: nickname,
		},
		[]registerFunction{{
			ClientID: clientID,
			Value:    "yes",
			Nickname: nickname,
			Function: "WOL",
		}},
	})

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal registration payload: %w", err)
	}

	url := fmt.Sprintf("http://%s%s", c.host, AccessControlEndpoint)

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create registration request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if pin != "" {
		req.SetBasicAuth("", pin)
	}

	if c.debug {
		c.logger.Debug().
			Str("url", url).
			Str("client_id", clientID).
			Bool("with_pin", pin != "").
			Msg("Sending registration request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send registration request: %w", err)
	}
	defer resp.Body.Close()

	if c.debug {
		c.logger.Debug().
			Int("status", resp.StatusCode).
			Msg("Registration request completed")
	}

	switch resp.StatusCode {
	case http.StatusOK:
		cookie := resp.Header.Get("Set-Cookie")
		if cookie == "" {
			return "", fmt.Errorf("registration succeeded but no cookie was returned")
		}
		return cookie, nil
	case http.StatusUnauthorized:
		if pin != "" {
			return "", fmt.Errorf("%w: status %d", ErrPairingRejected, resp.StatusCode)
		}
		return "", ErrPINRequired
	case http.StatusForbidden:
		return "", fmt.Errorf("%w: status %d", ErrPairingRejected, resp.StatusCode)
	default:
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("registration request failed with status %d: %s", resp.StatusCode, string(body))
	}
}

// RemoteRequest sends an IRCC SOAP request for remote control commands. The
// stored credential is attached as the TV's auth cookie.
func (c *BraviaClient) RemoteRequest(code BraviaRemoteCode) error {
	soapBody := fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/" s:encodingStyle="http://schemas.xmlsoap.org/soap/encoding/">
  <s:Body>
    <u:X_SendIRCC xmlns:u="urn:schemas-sony-com:service:IRCC:1">
      <IRCCCode>%s</IRCCCode>
    </u:X_SendIRCC>
  </s:Body>
</s:Envelope>`, string(code))

	url := fmt.Sprintf("http://%s%s", c.host, IRCCEndpoint)

	req, err := http.NewRequest("POST", url, bytes.NewBufferString(soapBody))
	if err != nil {
		return fmt.Errorf("failed to create IRCC request: %w", err)
	}

	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", `"urn:schemas-sony-com:service:IRCC:1#X_SendIRCC"`)
	if c.credential != "" {
		req.Header.Set("Cookie", c.credential)
	}

	if c.debug {
		c.logger.Debug().
			Str("url", url).
			Str("code", string(code)).
			Msg("Sending IRCC remote request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send IRCC request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: IRCC request refused with status %d", ErrUnauthorized, resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		if c.debug {
			c.logger.Error().
				Int("status", resp.StatusCode).
				Str("body", string(body)).
				Msg("IRCC request failed")
		}
		return fmt.Errorf("IRCC request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if c.debug {
		c.logger.Debug().
			Int("status", resp.StatusCode).
			Msg("IRCC request successful")
	}

	return nil
}

// ControlRequest sends a JSON API control request. The caller owns the
// returned response body.
func (c *BraviaClient) ControlRequest(endpoint BraviaEndpoint, payload BraviaPayload) (*http.Response, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	url := fmt.Sprintf("http://%s%s", c.host, string(endpoint))

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create control request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.credential != "" {
		req.Header.Set("Cookie", c.credential)
	}

	if c.debug {
		c.logger.Debug().
			Str("url", url).
			Str("endpoint", string(endpoint)).
			Str("method", payload.Method).
			Str("payload", string(jsonData)).
			Msg("Sending control API request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send control request: %w", err)
	}

	if c.debug {
		c.logger.Debug().
			Int("status", resp.StatusCode).
			Str("method", payload.Method).
			Msg("Control API request completed")
	}

	return resp, nil
}

// controlResult issues a control request and decodes the JSON result
// envelope, closing the body. Auth failures map to ErrUnauthorized.
func (c *BraviaClient) controlResult(endpoint BraviaEndpoint, payload BraviaPayload) (*braviaResult, error) {
	resp, err := c.ControlRequest(endpoint, payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("%w: %s refused with status %d", ErrUnauthorized, payload.Method, resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%s failed with status %d: %s", payload.Method, resp.StatusCode, string(body))
	}

	var result braviaResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", payload.Method, err)
	}

	return &result, nil
}
