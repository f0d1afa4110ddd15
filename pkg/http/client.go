package http

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	MIMEApplicationXML  = "application/xml"
	MIMEApplicationJSON = "application/json"
	MIMETextXML         = "text/xml"
	MIMETextPlain       = "text/plain"
	MIMEOctetStream     = "application/octet-stream"
)

// Client represents an HTTP client with configuration options.
type Client struct {
	baseURL            string
	client             *http.Client
	defaultHeaders     map[string]string
	defaultContentType string
	defaultAccept      string
	logger             HTTPLogger
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect      bool
	DefaultHeaders      map[string]string
	DefaultContentType  string
	DefaultAccept       string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	// ReadTimeout bounds a whole exchange. Zero means 60s, a negative value disables it.
	ReadTimeout time.Duration
	Logger      HTTPLogger
	// Transport replaces the pooled transport built from the options above.
	Transport http.RoundTripper
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 200
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 20
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 60 * time.Second
	}
	if opts.ReadTimeout < 0 {
		opts.ReadTimeout = 0
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 60 * time.Second
	}
	if opts.DefaultContentType == "" {
		opts.DefaultContentType = MIMEApplicationXML
	}
	if opts.DefaultAccept == "" {
		opts.DefaultAccept = MIMEApplicationXML
	}

	transport := opts.Transport
	if transport == nil {
		transport = &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        opts.MaxIdleConns,
			MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
			IdleConnTimeout:     opts.IdleConnTimeout,
			DialContext: (&net.Dialer{
				Timeout: opts.ConnectionTimeout,
			}).DialContext,
		}
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	return &Client{
		baseURL:            strings.TrimRight(baseURL, "/"),
		client:             client,
		defaultHeaders:     opts.DefaultHeaders,
		defaultContentType: opts.DefaultContentType,
		defaultAccept:      opts.DefaultAccept,
		logger:             logger,
	}
}

// BaseURL returns the normalized base URL requests are resolved against.
func (hc *Client) BaseURL() string {
	return hc.baseURL
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// Send issues a single request and returns the raw status and body. The Accept header
// defaults to the client's accept type unless headers already carries one.
func (hc *Client) Send(ctx context.Context, path string, method RequestMethod, body any, headers map[string]string) (*Response, error) {
	return hc.Request().
		WithMethod(method).
		WithPath(path).
		WithBody(body).
		WithHeaders(headers).
		Execute(ctx)
}

// doRequest builds the URL, prepares the request body, sets headers, executes the request and reads the whole body.
func (hc *Client) doRequest(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, body any) (*Response, error) {
	target := hc.buildURL(path)
	if len(queryParams) > 0 {
		target += "?" + buildQueryString(queryParams)
	}

	bodyReader, contentType, rawBody, err := hc.prepareBody(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", hc.defaultAccept)
	}

	hc.logger.LogRequest(method, target, flattenHeaders(req.Header), rawBody)
	start := time.Now()

	resp, err := hc.client.Do(req)
	if err != nil {
		hc.logger.LogError(method, target, time.Since(start).Milliseconds(), err)
		return nil, &TransportError{Method: method, URL: target, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		hc.logger.LogError(method, target, time.Since(start).Milliseconds(), err)
		return nil, &TransportError{Method: method, URL: target, Err: err}
	}

	respContentType := resp.Header.Get("Content-Type")
	if respContentType == "" {
		respContentType = hc.defaultContentType
	}

	response := &Response{
		StatusCode:  resp.StatusCode,
		Header:      resp.Header,
		Body:        bodyBytes,
		contentType: respContentType,
	}
	hc.logger.LogResponse(method, target, resp.StatusCode, string(bodyBytes), time.Since(start).Milliseconds())

	return response, nil
}

// prepareBody turns body into a reader. Strings and byte slices are sent verbatim; anything
// else is marshalled with the client's default content type.
func (hc *Client) prepareBody(body any) (io.Reader, string, string, error) {
	if body == nil {
		return nil, "", "", nil
	}

	switch b := body.(type) {
	case string:
		return strings.NewReader(b), MIMETextPlain, b, nil
	case []byte:
		return bytes.NewReader(b), MIMEOctetStream, string(b), nil
	}

	var encoded []byte
	var err error
	contentType := hc.defaultContentType

	switch contentType {
	case MIMEApplicationXML, MIMETextXML:
		encoded, err = xml.Marshal(body)
		if err != nil {
			return nil, "", "", fmt.Errorf("failed to marshal request body to XML: %w", err)
		}
	default:
		encoded, err = json.Marshal(body)
		if err != nil {
			return nil, "", "", fmt.Errorf("failed to marshal request body to JSON: %w", err)
		}
		contentType = MIMEApplicationJSON
	}

	return bytes.NewReader(encoded), contentType, string(encoded), nil
}

// buildURL builds a normalized URL by properly handling baseURL and path
func (hc *Client) buildURL(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return hc.baseURL + path
}

// buildQueryString builds an escaped query string from parameters
func buildQueryString(params map[string]string) string {
	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}
	return values.Encode()
}

func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k := range h {
		out[k] = h.Get(k)
	}
	return out
}
