package formatter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

const (
	// TimelineTextLimit is the number of characters of each timeline entry
	// shown in text mode.
	TimelineTextLimit = 200
	Ellipsis          = "..."
)

var jsonOptions = &pretty.Options{
	Width:    0,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// JSON indents payload by two spaces, keeping key order and leaving
// non-ASCII text as is.
func JSON(payload []byte) string {
	return string(bytes.TrimRight(pretty.PrettyOptions(payload, jsonOptions), "\n"))
}

func Tweet(payload []byte, textOnly bool) string {
	if textOnly {
		return TweetText(payload)
	}

	return JSON(payload)
}

func Timeline(payload []byte, textOnly bool) string {
	if textOnly {
		return TimelineText(payload)
	}

	return JSON(payload)
}

func TweetText(payload []byte) string {
	tweet := gjson.GetBytes(payload, "data.tweet")

	lines := []string{
		fmt.Sprintf("Author: %s (@%s)",
			valueOr(tweet.Get("author.name"), "Unknown"),
			valueOr(tweet.Get("author.screen_name"), "unknown"),
		),
		fmt.Sprintf("Date: %s", valueOr(tweet.Get("created_at"), "Unknown")),
		fmt.Sprintf("Text: %s", valueOr(tweet.Get("text"), "No text")),
		fmt.Sprintf("Likes: %s | Retweets: %s | Replies: %s | Views: %s",
			valueOr(tweet.Get("likes"), "0"),
			valueOr(tweet.Get("retweets"), "0"),
			valueOr(tweet.Get("replies"), "0"),
			valueOr(tweet.Get("views"), "0"),
		),
	}

	return strings.Join(lines, "\n")
}

func TimelineText(payload []byte) string {
	data := gjson.GetBytes(payload, "data")
	user := data.Get("user")

	blocks := []string{
		fmt.Sprintf("User: %s (@%s)\n",
			valueOr(user.Get("name"), "Unknown"),
			valueOr(user.Get("screen_name"), "unknown"),
		),
	}

	timeline := data.Get("timeline")
	if timeline.IsArray() {
		blocks = append(blocks, lo.Map(timeline.Array(), func(tweet gjson.Result, i int) string {
			return timelineEntryText(i+1, tweet)
		})...)
	}

	return strings.Join(blocks, "\n")
}

func timelineEntryText(index int, tweet gjson.Result) string {
	return fmt.Sprintf("\n--- Tweet %d ---\nDate: %s\nText: %s%s\nLikes: %s | Retweets: %s | Views: %s\n",
		index,
		valueOr(tweet.Get("created_at"), "Unknown"),
		truncate(valueOr(tweet.Get("text"), "No text"), TimelineTextLimit),
		Ellipsis,
		valueOr(tweet.Get("likes"), "0"),
		valueOr(tweet.Get("retweets"), "0"),
		valueOr(tweet.Get("views"), "0"),
	)
}

// valueOr treats absent and null fields alike, so a null counter such as
// "views": null prints as 0.
func valueOr(value gjson.Result, placeholder string) string {
	if !value.Exists() || value.Type == gjson.Null {
		return placeholder
	}

	return value.String()
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	return string(runes[:limit])
}
