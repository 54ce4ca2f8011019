package config

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/adminconsole/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base address of the admin API
//	-t int      request timeout in milliseconds
//	-d string   path of the local database
//	-l string   log level
//
// os.Args is filtered with flagx.FilterArgs first so flags owned by other
// layers (-c, -e) do not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base address of the admin API")
	timeoutMS := fs.Int("t", int(cfg.RequestTimeout.Milliseconds()), "request timeout (in milliseconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutMS) * time.Millisecond
}
