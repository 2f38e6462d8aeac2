package models

import (
	"go.uber.org/fx"

	"github.com/newclawpro/x-tweet-fetcher/internal/models/tweets"
)

func NewModules() fx.Option {
	return fx.Options(
		fx.Provide(tweets.NewModel()),
	)
}
