package lib

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"github.com/newclawpro/x-tweet-fetcher/internal/configs"
	"github.com/newclawpro/x-tweet-fetcher/pkg/logger"
	"github.com/newclawpro/x-tweet-fetcher/pkg/options"
)

const AppName = "x-tweet-fetcher"

type NewLoggerParam struct {
	fx.In

	Config *configs.Config

	// Options, when supplied, replace the defaults of logger.NewLogger.
	Options []options.CallOptions[logger.LoggerOptions] `optional:"true"`
}

func NewLogger() func(param NewLoggerParam) *logger.Logger {
	return func(param NewLoggerParam) *logger.Logger {
		return logger.NewLogger(param.Config.LogLevel, AppName, make([]logrus.Hook, 0), param.Options...)
	}
}
