package fxtwitter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/imroc/req/v3"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/newclawpro/x-tweet-fetcher/pkg/options"
)

const (
	DefaultBaseURL       = "https://api.fxtwitter.com"
	DefaultUserAgent     = "Mozilla/5.0 (compatible; NewClawBot/1.0; +https://newclaw.pro)"
	DefaultTimeout       = 15 * time.Second
	DefaultTimelineCount = 5
)

// CallOption configures NewClient.
type CallOption = options.CallOptions[ClientOptions]

type ClientOptions struct {
	Logger    *logrus.Entry
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

func WithLogger(logger *logrus.Entry) options.CallOptions[ClientOptions] {
	return options.NewCallOptions(func(o *ClientOptions) {
		o.Logger = logger
	})
}

func WithBaseURL(baseURL string) options.CallOptions[ClientOptions] {
	return options.NewCallOptions(func(o *ClientOptions) {
		o.BaseURL = baseURL
	})
}

func WithUserAgent(userAgent string) options.CallOptions[ClientOptions] {
	return options.NewCallOptions(func(o *ClientOptions) {
		o.UserAgent = userAgent
	})
}

func WithTimeout(timeout time.Duration) options.CallOptions[ClientOptions] {
	return options.NewCallOptions(func(o *ClientOptions) {
		o.Timeout = timeout
	})
}

// Client talks to the FxTwitter API. Every call is a single GET without
// retries.
type Client struct {
	reqClient *req.Client
	logger    *logrus.Entry
	baseURL   string
}

func NewClient(callOpts ...CallOption) (*Client, error) {
	opts := options.ApplyCallOptions(callOpts, ClientOptions{
		Logger:    logrus.NewEntry(logrus.New()),
		BaseURL:   DefaultBaseURL,
		UserAgent: DefaultUserAgent,
		Timeout:   DefaultTimeout,
	})

	baseURL, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid FxTwitter API base URL %q: %w", opts.BaseURL, err)
	}
	if (baseURL.Scheme != "http" && baseURL.Scheme != "https") || baseURL.Host == "" {
		return nil, fmt.Errorf("invalid FxTwitter API base URL %q: must be an absolute http(s) URL", opts.BaseURL)
	}
	if opts.Timeout <= 0 {
		return nil, fmt.Errorf("invalid timeout %s: must be positive", opts.Timeout)
	}

	normalizedBaseURL := strings.TrimSuffix(opts.BaseURL, "/")

	c := req.
		C().
		SetBaseURL(normalizedBaseURL).
		SetUserAgent(opts.UserAgent).
		SetCommonHeader("Accept", "application/json").
		SetTimeout(opts.Timeout)

	client := &Client{
		reqClient: c,
		logger:    opts.Logger,
		baseURL:   normalizedBaseURL,
	}

	return client, nil
}

// BaseURL returns the API base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) RewriteURL(tweetURL string) string {
	return RewriteURL(tweetURL, c.baseURL)
}

// Tweet fetches the payload of the tweet at tweetURL, an x.com or twitter.com
// status link.
func (c *Client) Tweet(ctx context.Context, tweetURL string) ([]byte, error) {
	apiURL := c.RewriteURL(tweetURL)
	logger := c.logger.WithField("url", apiURL)

	logger.Debug("fetching tweet")

	parsedURL, err := url.Parse(apiURL)
	if err != nil || !parsedURL.IsAbs() {
		return nil, c.fail(logger, "tweet", apiURL, fmt.Errorf("%w: %q", ErrUnsupportedURL, apiURL))
	}

	payload, err := c.get(ctx, c.reqClient.R(), apiURL)
	if err != nil {
		return nil, c.fail(logger, "tweet", apiURL, err)
	}

	logger.WithField("bytes", len(payload)).Debug("tweet fetched")
	return payload, nil
}

// Timeline fetches the timeline of username and keeps at most count entries.
// Leading @ characters of username are ignored.
func (c *Client) Timeline(ctx context.Context, username string, count int) ([]byte, error) {
	username = strings.TrimLeft(username, "@")
	apiURL := c.baseURL + "/" + url.PathEscape(username)
	logger := c.logger.WithFields(logrus.Fields{
		"url":      apiURL,
		"username": username,
		"count":    count,
	})

	if count < 0 {
		return nil, c.fail(logger, "timeline", apiURL, ErrInvalidCount)
	}

	logger.Debug("fetching timeline")

	payload, err := c.get(ctx, c.reqClient.R().SetPathParam("username", username), "/{username}")
	if err != nil {
		return nil, c.fail(logger, "timeline", apiURL, err)
	}

	err = CheckAPICode(payload)
	if err != nil {
		return nil, c.fail(logger, "timeline", apiURL, err)
	}

	payload, err = LimitTimeline(payload, count)
	if err != nil {
		return nil, c.fail(logger, "timeline", apiURL, err)
	}

	logger.WithField("entries", len(gjson.GetBytes(payload, TimelinePath).Array())).Debug("timeline fetched")
	return payload, nil
}

func (c *Client) get(ctx context.Context, r *req.Request, link string) ([]byte, error) {
	resp, err := r.SetContext(ctx).Get(link)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, &HTTPStatusError{
			StatusCode: resp.StatusCode,
			Reason:     reasonPhrase(resp.StatusCode, resp.Status),
		}
	}

	body, err := resp.ToBytes()
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(body) {
		return nil, fmt.Errorf("%w: body is not valid UTF-8", ErrMalformedResponse)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: body is not valid JSON", ErrMalformedResponse)
	}

	root := gjson.ParseBytes(body)
	if !root.IsObject() || len(root.Map()) == 0 {
		return nil, fmt.Errorf("%w: expected a non-empty JSON object", ErrMalformedResponse)
	}

	return body, nil
}

func (c *Client) fail(logger *logrus.Entry, op string, apiURL string, err error) error {
	fetchErr := &FetchError{Op: op, URL: apiURL, Err: err}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		logger = logger.WithField("status_code", statusErr.StatusCode)
	}

	logger.Error(fetchErr.Error())
	return fetchErr
}

// reasonPhrase extracts "Not Found" from a status line like "404 Not Found".
func reasonPhrase(statusCode int, status string) string {
	reason := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(statusCode)))
	if reason != "" {
		return reason
	}

	return http.StatusText(statusCode)
}
