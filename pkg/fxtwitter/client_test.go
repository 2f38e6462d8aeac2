package fxtwitter

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/jack/status/20", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != DefaultUserAgent {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(tweetPayload))
	})
	mux.HandleFunc("/jack", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(timelinePayload(8)))
	})
	mux.HandleFunc("/ghost", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":404,"message":"User not found"}`))
	})
	mux.HandleFunc("/broken/status/1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	})
	mux.HandleFunc("/latin1/status/1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{\"code\":200,\"data\":{\"tweet\":{\"text\":\"\xff\xfe\"}}}"))
	})
	mux.HandleFunc("/empty/status/1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	mux.HandleFunc("/slow/status/1", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		_, _ = w.Write([]byte(tweetPayload))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func newTestClient(t *testing.T, baseURL string, logs *bytes.Buffer, callOpts ...CallOption) *Client {
	t.Helper()

	l := logrus.New()
	l.SetOutput(logs)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	client, err := NewClient(append([]CallOption{WithLogger(logrus.NewEntry(l)), WithBaseURL(baseURL)}, callOpts...)...)
	require.NoError(t, err)

	return client
}

func TestNewClient(t *testing.T) {
	client, err := NewClient()
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, client.BaseURL())

	client, err = NewClient(WithBaseURL("http://localhost:8080/"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", client.BaseURL())

	_, err = NewClient(WithBaseURL("api.fxtwitter.com"))
	assert.Error(t, err)

	_, err = NewClient(WithBaseURL("ftp://api.fxtwitter.com"))
	assert.Error(t, err)

	_, err = NewClient(WithTimeout(0))
	assert.Error(t, err)
}

func TestClientTweet(t *testing.T) {
	server := newTestServer(t)
	logs := new(bytes.Buffer)
	client := newTestClient(t, server.URL, logs)

	payload, err := client.Tweet(context.Background(), "https://x.com/jack/status/20")
	require.NoError(t, err)
	assert.JSONEq(t, tweetPayload, string(payload))
	assert.Empty(t, logs.String())

	payload, err = client.Tweet(context.Background(), "https://twitter.com/jack/status/20")
	require.NoError(t, err)
	assert.Equal(t, "jack", gjson.GetBytes(payload, "data.tweet.author.screen_name").String())
}

func TestClientTweetHTTPStatusError(t *testing.T) {
	server := newTestServer(t)
	logs := new(bytes.Buffer)
	client := newTestClient(t, server.URL, logs)

	payload, err := client.Tweet(context.Background(), "https://x.com/nobody/status/1")
	require.Error(t, err)
	assert.Nil(t, payload)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "tweet", fetchErr.Op)
	assert.Equal(t, server.URL+"/nobody/status/1", fetchErr.URL)

	var statusErr *HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, "HTTP Error 404: Not Found", err.Error())

	assert.Contains(t, logs.String(), "HTTP Error 404: Not Found")
	assert.Contains(t, logs.String(), "status_code=404")
}

func TestClientTweetUserAgent(t *testing.T) {
	server := newTestServer(t)
	client := newTestClient(t, server.URL, new(bytes.Buffer), WithUserAgent("curl/8.0"))

	_, err := client.Tweet(context.Background(), "https://x.com/jack/status/20")

	var statusErr *HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
}

func TestClientTweetMalformedResponse(t *testing.T) {
	server := newTestServer(t)
	logs := new(bytes.Buffer)
	client := newTestClient(t, server.URL, logs)

	_, err := client.Tweet(context.Background(), "https://x.com/broken/status/1")
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Contains(t, err.Error(), "error fetching tweet: malformed response")
	assert.Contains(t, logs.String(), "error fetching tweet")

	_, err = client.Tweet(context.Background(), "https://x.com/empty/status/1")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestClientTweetInvalidUTF8(t *testing.T) {
	server := newTestServer(t)
	logs := new(bytes.Buffer)
	client := newTestClient(t, server.URL, logs)

	payload, err := client.Tweet(context.Background(), "https://x.com/latin1/status/1")
	assert.Nil(t, payload)
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Contains(t, err.Error(), "not valid UTF-8")
	assert.Contains(t, logs.String(), "error fetching tweet")
}

func TestClientTweetRelativeURL(t *testing.T) {
	server := newTestServer(t)
	logs := new(bytes.Buffer)
	client := newTestClient(t, server.URL, logs)

	for _, tweetURL := range []string{"jack/status/20", "/jack/status/20", "x.com/jack/status/20"} {
		payload, err := client.Tweet(context.Background(), tweetURL)
		assert.Nil(t, payload, tweetURL)
		assert.ErrorIs(t, err, ErrUnsupportedURL, tweetURL)

		var fetchErr *FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, tweetURL, fetchErr.URL)
	}

	assert.Contains(t, logs.String(), "error fetching tweet: unknown url type")
}

func TestClientTweetTimeout(t *testing.T) {
	server := newTestServer(t)
	logs := new(bytes.Buffer)
	client := newTestClient(t, server.URL, logs, WithTimeout(50*time.Millisecond))

	_, err := client.Tweet(context.Background(), "https://x.com/slow/status/1")
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "error fetching tweet")
}

func TestClientTweetTransportError(t *testing.T) {
	server := newTestServer(t)
	baseURL := server.URL
	server.Close()

	client := newTestClient(t, baseURL, new(bytes.Buffer))

	_, err := client.Tweet(context.Background(), "https://x.com/jack/status/20")
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
}

func TestClientTimeline(t *testing.T) {
	server := newTestServer(t)
	client := newTestClient(t, server.URL, new(bytes.Buffer))

	payload, err := client.Timeline(context.Background(), "jack", DefaultTimelineCount)
	require.NoError(t, err)
	assert.Len(t, gjson.GetBytes(payload, TimelinePath).Array(), 5)
	assert.Equal(t, "Jack", gjson.GetBytes(payload, "data.user.name").String())

	payload, err = client.Timeline(context.Background(), "@@jack", 20)
	require.NoError(t, err)
	assert.Len(t, gjson.GetBytes(payload, TimelinePath).Array(), 8)
}

func TestClientTimelineAPIError(t *testing.T) {
	server := newTestServer(t)
	logs := new(bytes.Buffer)
	client := newTestClient(t, server.URL, logs)

	payload, err := client.Timeline(context.Background(), "ghost", 5)
	assert.Nil(t, payload)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Code)
	assert.Equal(t, "API Error: User not found", err.Error())
	assert.Contains(t, logs.String(), "API Error: User not found")
}

func TestClientTimelineNegativeCount(t *testing.T) {
	server := newTestServer(t)
	client := newTestClient(t, server.URL, new(bytes.Buffer))

	_, err := client.Timeline(context.Background(), "jack", -1)
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestReasonPhrase(t *testing.T) {
	assert.Equal(t, "Not Found", reasonPhrase(404, "404 Not Found"))
	assert.Equal(t, "Too Many Requests", reasonPhrase(429, "429"))
	assert.Equal(t, "Teapot Time", reasonPhrase(418, "418 Teapot Time"))
}
