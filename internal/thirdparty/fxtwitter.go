package thirdparty

import (
	"go.uber.org/fx"

	"github.com/newclawpro/x-tweet-fetcher/internal/configs"
	"github.com/newclawpro/x-tweet-fetcher/pkg/fxtwitter"
	"github.com/newclawpro/x-tweet-fetcher/pkg/logger"
)

type NewFxTwitterParam struct {
	fx.In

	Logger *logger.Logger
	Config *configs.Config
}

type FxTwitter struct {
	*fxtwitter.Client
}

func NewFxTwitter() func(param NewFxTwitterParam) (*FxTwitter, error) {
	return func(param NewFxTwitterParam) (*FxTwitter, error) {
		client, err := fxtwitter.NewClient(
			fxtwitter.WithLogger(param.Logger.Entry()),
			fxtwitter.WithBaseURL(param.Config.FxTwitterAPIBaseURL),
			fxtwitter.WithUserAgent(param.Config.UserAgent),
			fxtwitter.WithTimeout(param.Config.Timeout),
		)
		if err != nil {
			return nil, err
		}

		return &FxTwitter{
			Client: client,
		}, nil
	}
}
