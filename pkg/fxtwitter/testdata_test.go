package fxtwitter

import (
	"fmt"
	"strings"
)

const tweetPayload = `{"code":200,"message":"OK","data":{"tweet":{"url":"https://x.com/jack/status/20","id":"20","text":"just setting up my twttr","author":{"name":"jack","screen_name":"jack"},"created_at":"Tue Mar 21 20:50:14 +0000 2006","likes":300000,"retweets":120000,"replies":16000,"views":null}}}`

func timelinePayload(n int) string {
	entries := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		entries = append(entries, fmt.Sprintf(`{"id":"%d","text":"tweet %d","likes":%d}`, i, i, i*10))
	}

	return `{"code":200,"message":"OK","data":{"user":{"name":"Jack","screen_name":"jack"},"timeline":[` + strings.Join(entries, ",") + `]}}`
}
