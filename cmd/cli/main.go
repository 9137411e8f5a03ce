package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	host    string
	timeout time.Duration
	client  = &http.Client{}
)

// statusError reports a response the server answered with a 4xx or 5xx code.
type statusError struct {
	Method string
	Target string
	Code   int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s %s returned %d %s", e.Method, e.Target, e.Code, http.StatusText(e.Code))
}

var rootCmd = &cobra.Command{
	Use:   "padel-cli",
	Short: "Record padel ratings and tournaments on a padel-tracker server",
	Long: `A command-line interface for recording padel ratings and tournament
results and reading the derived views from a padel-tracker server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		client.Timeout = timeout
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "The host address of the server")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "How long to wait for the server")
}

// exitCode is 2 when the server rejected the request and 1 for any other failure.
func exitCode(err error) int {
	var se *statusError
	if errors.As(err, &se) {
		return 2
	}
	return 1
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "padel-cli: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func main() {
	Execute()
}
