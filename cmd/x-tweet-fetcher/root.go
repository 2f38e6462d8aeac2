package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/newclawpro/x-tweet-fetcher/internal/configs"
	"github.com/newclawpro/x-tweet-fetcher/internal/formatter"
	"github.com/newclawpro/x-tweet-fetcher/internal/lib"
	"github.com/newclawpro/x-tweet-fetcher/internal/models"
	"github.com/newclawpro/x-tweet-fetcher/internal/models/tweets"
	"github.com/newclawpro/x-tweet-fetcher/internal/thirdparty"
	"github.com/newclawpro/x-tweet-fetcher/pkg/fxtwitter"
)

var errMissingTarget = errors.New("either --url or --user must be supplied")

type fetchOptions struct {
	url      string
	user     string
	count    int
	textOnly bool
	pretty   bool
	verbose  bool
}

// newRootCommand builds the CLI. extraOptions are appended to the fx graph.
func newRootCommand(extraOptions ...fx.Option) *cobra.Command {
	var opts fetchOptions

	cmd := &cobra.Command{
		Use:   "x-tweet-fetcher",
		Short: "Fetch tweets from X/Twitter",
		Long: `Fetch a single tweet or a user's recent timeline from X/Twitter without
login or API keys, using the public FxTwitter API.

When both --url and --user are given, --url wins.`,
		Example: `  x-tweet-fetcher --url https://x.com/jack/status/20
  x-tweet-fetcher --user jack --count 3 --text-only`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.url == "" && opts.user == "" {
				_ = cmd.Help()
				return errMissingTarget
			}
			if opts.count < 0 {
				return fmt.Errorf("invalid --count %d: %w", opts.count, fxtwitter.ErrInvalidCount)
			}

			return runFetch(cmd.Context(), cmd.OutOrStdout(), opts, extraOptions...)
		},
	}

	cmd.Flags().StringVar(&opts.url, "url", "", "Tweet URL to fetch")
	cmd.Flags().StringVar(&opts.user, "user", "", "Username to fetch timeline for")
	cmd.Flags().IntVar(&opts.count, "count", fxtwitter.DefaultTimelineCount, "Number of tweets to fetch")
	cmd.Flags().BoolVar(&opts.textOnly, "text-only", false, "Output human-readable text instead of JSON")
	// JSON output is always indented, so --pretty changes nothing.
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Pretty print JSON output")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log requests at debug level to stderr")

	return cmd
}

func runFetch(ctx context.Context, out io.Writer, opts fetchOptions, extraOptions ...fx.Option) error {
	var model *tweets.Model

	app := fx.New(
		fx.NopLogger,
		fx.Provide(configs.NewConfig()),
		fx.Decorate(func(config *configs.Config) *configs.Config {
			if opts.verbose {
				config.LogLevel = logrus.DebugLevel
			}

			return config
		}),
		fx.Options(lib.NewModules()),
		fx.Options(thirdparty.NewModules()),
		fx.Options(models.NewModules()),
		fx.Options(extraOptions...),
		fx.Populate(&model),
	)
	if err := app.Err(); err != nil {
		return err
	}

	if opts.url != "" {
		payload, err := model.GetOneTweet(ctx, opts.url)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(out, formatter.Tweet(payload, opts.textOnly))
		return err
	}

	payload, err := model.GetTimeline(ctx, opts.user, opts.count)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, formatter.Timeline(payload, opts.textOnly))
	return err
}

// reportError prints err unless it has been reported already, either by the
// fetch boundary or by printing usage.
func reportError(w io.Writer, err error) {
	var fetchErr *fxtwitter.FetchError
	if errors.As(err, &fetchErr) || errors.Is(err, errMissingTarget) {
		return
	}

	fmt.Fprintf(w, "Error: %v\n", err)
}

// mapErrorToExitCode maps errors to process exit codes. Every failure,
// usage or fetch, exits with 1.
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	return 1
}
