package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "mentors-web",
	Short: "Landing site for the mentoring programme",
	Long: `mentors-web serves the server-rendered landing page, keeps each open
page's navbar, menu and testimonials state, and streams navbar updates over a
websocket. It can also export a rendered page and check its in-page links.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "mentors-web.yaml", "config file path")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
