package fxtwitter

import "strings"

// PublicHostPrefixes are the tweet URL prefixes served by FxTwitter.
var PublicHostPrefixes = []string{
	"https://x.com/",
	"https://twitter.com/",
}

// RewriteURL moves a public tweet URL onto baseURL, keeping everything after
// the host prefix as is. Other URLs are returned unchanged.
func RewriteURL(tweetURL string, baseURL string) string {
	apiPrefix := strings.TrimSuffix(baseURL, "/") + "/"

	for _, prefix := range PublicHostPrefixes {
		rest, ok := strings.CutPrefix(tweetURL, prefix)
		if ok {
			return apiPrefix + rest
		}
	}

	return tweetURL
}
