package oxforddict

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultBaseURL is the v1 endpoint of the Oxford Dictionaries API.
	DefaultBaseURL = "https://od-api.oxforddictionaries.com/api/v1"

	// DefaultTimeout bounds a single request unless WithTimeout overrides it.
	DefaultTimeout = 10 * time.Second
)

const (
	categoryEntries     = "entries"
	categoryInflections = "inflections"
	categoryWordlist    = "wordlist"
	categorySearch      = "search"
)

// Client is a wrapper around the Oxford Dictionaries API. Credentials are
// fixed at construction and attached to every request as the app_id and
// app_key headers. A Client holds no mutable state after New returns and is
// safe for concurrent use.
type Client struct {
	http     *resty.Client
	language string
	logger   *slog.Logger
}

type options struct {
	baseURL    string
	language   string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*options)

// WithLanguage sets the source language segment of every request path. The
// code must be one of SupportedLanguages; New fails with
// *UnsupportedLanguageError otherwise.
func WithLanguage(language string) Option {
	return func(o *options) {
		o.language = language
	}
}

// WithBaseURL overrides DefaultBaseURL, for example to point the client at a
// test server.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithTimeout overrides DefaultTimeout for every request issued by the
// client.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithHTTPClient supplies the underlying http.Client, for callers that need a
// custom transport or proxy.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// WithLogger sets the logger for request debug logging. slog.Default is used
// otherwise.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New creates a Client for the given credentials. No network activity happens
// here; the credentials are not checked until the first lookup.
func New(appID, appKey string, opts ...Option) (*Client, error) {
	o := options{
		baseURL:  DefaultBaseURL,
		language: DefaultLanguage,
		timeout:  DefaultTimeout,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if !IsSupportedLanguage(o.language) {
		return nil, &UnsupportedLanguageError{Language: o.language}
	}

	httpClient := resty.New()
	if o.httpClient != nil {
		httpClient = resty.NewWithClient(o.httpClient)
	}
	httpClient.
		SetBaseURL(strings.TrimSuffix(o.baseURL, "/")).
		SetHeader("app_id", appID).
		SetHeader("app_key", appKey).
		SetTimeout(o.timeout)

	return &Client{
		http:     httpClient,
		language: strings.ToLower(o.language),
		logger:   o.logger,
	}, nil
}

// Language returns the source language the client was built with.
func (c *Client) Language() string {
	return c.language
}

// get performs one API exchange: a GET on path followed by a generic JSON
// decode of the body.
func (c *Client) get(ctx context.Context, path string, query map[string]string) (Response, error) {
	request := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		request.SetQueryParams(query)
	}

	c.logger.DebugContext(ctx, "oxford dictionaries request", slog.String("path", path))
	res, err := request.Get(path)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if code := res.StatusCode(); code < http.StatusOK || code >= http.StatusMultipleChoices {
		return nil, &APIError{StatusCode: code, Body: res.Body()}
	}

	var payload Response
	if err := json.Unmarshal(res.Body(), &payload); err != nil {
		return nil, &DecodeError{Body: res.Body(), Err: err}
	}
	c.logger.DebugContext(ctx, "oxford dictionaries response",
		slog.String("path", path),
		slog.Int("status", res.StatusCode()),
	)
	return payload, nil
}

// path builds /{category}/{language}/{segments...}. Segments are joined as
// given: the API's filter syntax relies on literal ';' and '=' characters
// inside a segment, so no percent-encoding is applied.
func (c *Client) path(category string, segments ...string) string {
	parts := append([]string{category, c.language}, segments...)
	return "/" + strings.Join(parts, "/")
}

// normalizeWord converts a word to the form the API expects: surrounding
// whitespace removed, lowercased, inner spaces replaced with underscores.
func normalizeWord(word string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(word)), " ", "_")
}
