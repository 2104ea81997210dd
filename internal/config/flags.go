package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/peoplekeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Only -u, -p, -l, -m and -v are considered; everything else in args is
// left for other parsers. It panics on malformed values.
func parseFlags(cfg *Config, args []string) {
	filtered := flagx.FilterArgs(args, []string{"-u", "-p", "-l", "-m", "-v"})

	fs := flag.NewFlagSet("peoplekeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.UsersFile, "u", cfg.UsersFile, "credential file")
	fs.StringVar(&cfg.PeopleFile, "p", cfg.PeopleFile, "people file")
	fs.StringVar(&cfg.AuditFile, "l", cfg.AuditFile, "audit log file")
	fs.IntVar(&cfg.MaxLoginAttempts, "m", cfg.MaxLoginAttempts, "failed login attempts per session")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")

	if err := fs.Parse(filtered); err != nil {
		panic(err)
	}
}
