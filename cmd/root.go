package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/zorah/internal/config"
	"github.com/sells-group/zorah/pkg/crawlsvc"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "zorah",
	Short: "Web spider front end",
	Long:  "Submits a start URL to the crawl service and shows every visited, blocked, redirected or failed page as a classified feed.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// newCrawlClient builds the crawl service client from configuration.
func newCrawlClient(c *config.Config) crawlsvc.Client {
	return crawlsvc.NewClient(
		crawlsvc.WithBaseURL(c.Crawl.BaseURL),
		crawlsvc.WithTimeout(c.Crawl.Timeout()),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
