package tweets

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"go.uber.org/fx"

	"github.com/newclawpro/x-tweet-fetcher/internal/thirdparty"
	"github.com/newclawpro/x-tweet-fetcher/pkg/fxtwitter"
	"github.com/newclawpro/x-tweet-fetcher/pkg/logger"
)

type NewModelParam struct {
	fx.In

	Logger    *logger.Logger
	FxTwitter *thirdparty.FxTwitter
}

type Model struct {
	Logger    *logger.Logger
	fxtwitter *thirdparty.FxTwitter
}

func NewModel() func(param NewModelParam) *Model {
	return func(param NewModelParam) *Model {
		return &Model{
			Logger:    param.Logger,
			fxtwitter: param.FxTwitter,
		}
	}
}

// GetOneTweet returns the raw FxTwitter payload of the tweet behind tweetURL.
// Errors are *fxtwitter.FetchError and have already been logged.
func (m *Model) GetOneTweet(ctx context.Context, tweetURL string) ([]byte, error) {
	payload, err := m.fxtwitter.Tweet(ctx, tweetURL)
	if err != nil {
		return nil, err
	}

	code := gjson.GetBytes(payload, fxtwitter.CodePath)
	if code.Exists() && code.Int() != http.StatusOK {
		m.Logger.WithFields(logrus.Fields{
			"tweet_url": tweetURL,
			"code":      code.Int(),
			"message":   gjson.GetBytes(payload, fxtwitter.MessagePath).String(),
		}).Warn("FxTwitter answered with a non-200 code, printing the payload as is")
	}

	return payload, nil
}

// GetTimeline returns the timeline payload of username holding at most count
// entries.
func (m *Model) GetTimeline(ctx context.Context, username string, count int) ([]byte, error) {
	payload, err := m.fxtwitter.Timeline(ctx, username, count)
	if err != nil {
		return nil, err
	}

	m.Logger.WithFields(logrus.Fields{
		"username": username,
		"entries":  len(gjson.GetBytes(payload, fxtwitter.TimelinePath).Array()),
	}).Debug("timeline ready")

	return payload, nil
}
