package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pushkov-fedor/course-selection/internal/client"
)

var (
	apiURL     string
	adminLogin string
	adminPass  string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "selectctl",
	Short: "Command line client for the course selection API",
	Long: `selectctl talks to a running course selection server: browse the
catalog, inspect enrollment requests, enroll into courses and switch
between offerings.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:8084/api/v1", "Base URL of the API")
	rootCmd.PersistentFlags().StringVar(&adminLogin, "login", "", "Admin login for protected calls")
	rootCmd.PersistentFlags().StringVar(&adminPass, "password", "", "Admin password for protected calls")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every API request")
}

// newClient builds the API client from the persistent flags, logging in
// when admin credentials were provided.
func newClient(cmd *cobra.Command) (*client.Client, error) {
	lgr := zerolog.Nop()
	if verbose {
		lgr = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	}

	c := client.New(apiURL, client.WithLogger(lgr))
	if adminLogin != "" {
		if _, err := c.Login(cmd.Context(), adminLogin, adminPass); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
