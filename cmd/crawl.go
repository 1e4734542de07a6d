package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/zorah/internal/config"
	"github.com/sells-group/zorah/internal/feed"
	"github.com/sells-group/zorah/internal/ui"
)

var (
	crawlFormat  string
	crawlOutput  string
	crawlNoColor bool
)

// crawlOptions are the per-invocation settings of the crawl command.
type crawlOptions struct {
	format  string
	output  string
	noColor bool
}

var crawlCmd = &cobra.Command{
	Use:          "crawl <url>",
	Short:        "Crawl a start URL and print the result feed",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		var raw string
		if len(args) == 1 {
			raw = args[0]
		}

		opts := crawlOptions{format: crawlFormat, output: crawlOutput, noColor: crawlNoColor}
		return runCrawl(ctx, cfg, raw, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func runCrawl(ctx context.Context, c *config.Config, raw string, opts crawlOptions, stdout, stderr io.Writer) error {
	if opts.format != "" {
		c.Output.Format = opts.format
	}
	if err := c.Validate("crawl"); err != nil {
		return err
	}
	format, err := feed.ParseFormat(c.Output.Format)
	if err != nil {
		return err
	}

	out := stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return eris.Wrapf(err, "create output file %s", opts.output)
		}
		defer f.Close()
		out = f
	}

	useColor := c.Output.Color && !opts.noColor && !color.NoColor
	var writerOpts []feed.WriterOption
	if !useColor || opts.output != "" {
		writerOpts = append(writerOpts, feed.WithoutColor())
	}
	w, err := feed.NewWriter(format, out, writerOpts...)
	if err != nil {
		return err
	}

	viewOpts := []ui.TerminalOption{ui.WithColor(useColor)}
	if useColor {
		viewOpts = append(viewOpts, ui.WithSpinner(100*time.Millisecond))
	}
	view := ui.NewTerminalView(stderr, w, viewOpts...)

	ctl := ui.NewController(newCrawlClient(c), view, ui.WithLogger(zap.L()))
	ctl.Submit(ctx, raw)

	if err := view.Err(); err != nil {
		return eris.Wrap(err, "write results")
	}
	st := ctl.State()
	if st.Phase == ui.PhaseDisplayingError {
		return eris.Errorf("crawl failed: %s", st.Message)
	}
	// Views get no cards for an empty crawl; machine formats still need a document.
	if st.Phase == ui.PhaseDisplaying && len(st.Items) == 0 && format != feed.FormatText {
		if err := w.WriteCards(nil); err != nil {
			return eris.Wrap(err, "write results")
		}
	}
	return nil
}

func init() {
	crawlCmd.Flags().StringVarP(&crawlFormat, "format", "f", "", "output format: text, markdown, html, json, yaml (default from config)")
	crawlCmd.Flags().StringVarP(&crawlOutput, "output", "o", "", "write results to a file instead of stdout")
	crawlCmd.Flags().BoolVar(&crawlNoColor, "no-color", false, "disable colored output")
	rootCmd.AddCommand(crawlCmd)
}
