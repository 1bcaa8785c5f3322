package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/docproc/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags. The
// args are filtered through flagx.FilterArgs so flags owned by other
// packages (like -c/-config) do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-u", "-p", "-o", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the backend API")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	uploadTimeout := fs.Int("u", int(cfg.UploadTimeout.Seconds()), "upload timeout (in seconds)")
	pollInterval := fs.Int("p", int(cfg.PollInterval.Seconds()), "task poll interval (in seconds)")
	fs.StringVar(&cfg.OutputDir, "o", cfg.OutputDir, "directory downloads are saved into")
	fs.StringVar(&cfg.SessionID, "s", cfg.SessionID, "session id (generated when empty)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.UploadTimeout = time.Duration(*uploadTimeout) * time.Second
	cfg.PollInterval = time.Duration(*pollInterval) * time.Second
}
