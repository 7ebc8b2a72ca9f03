package config

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gatepass/internal/flagx"
)

// ErrHelp is returned by LoadConfig when -h or --help is given.
var ErrHelp = flag.ErrHelp

var flagNames = []string{
	"username", "email", "password", "noinput", "dsn", "timeout", "log-level", "h", "help",
}

func newFlagSet(config *Config) *flag.FlagSet {
	fs := flag.NewFlagSet("createsuperuser", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.UserName, "username", config.UserName, "username for the superuser")
	fs.StringVar(&config.Email, "email", config.Email, "email for the superuser")
	fs.StringVar(&config.Password, "password", config.Password, "password for the superuser")
	fs.BoolVar(&config.NoInput, "noinput", config.NoInput, "do not print the change-password reminder")
	fs.StringVar(&config.DatabaseDSN, "dsn", config.DatabaseDSN, "database DSN")
	fs.DurationVar(&config.ConnectTimeout, "timeout", config.ConnectTimeout, "database connect and migrate timeout")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level (debug, info, warn, error)")

	return fs
}

// parseFlags populates Config from command-line flags. Each flag may be given
// with one or two leading dashes.
//
//	--username string     account username
//	--email string        account email
//	--password string     account password
//	--noinput             suppress the post-creation reminder
//	--dsn string          PostgreSQL DSN
//	--timeout duration    database connect/migrate timeout
//	--log-level string    debug, info, warn or error
//	-h, --help            ErrHelp
//
// Only these flags are picked out of os.Args (see flagx.FilterArgs), so -c and
// -env-file handled by earlier layers do not trip the parser. A bare argument
// among them is an error rather than the silent end of parsing.
func parseFlags(config *Config) error {
	args := flagx.FilterArgs(os.Args[1:], flagx.Dashed(flagNames...))

	fs := newFlagSet(config)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return nil
}

// Usage writes the flag reference, with literal defaults, to w.
func Usage(w io.Writer) {
	c := &Config{}
	c.LoadDefaults()

	fs := newFlagSet(c)
	fs.SetOutput(w)

	_, _ = fmt.Fprintln(w, "Usage of createsuperuser:")
	fs.PrintDefaults()
	_, _ = fmt.Fprintln(w, "  -c, -config string\n    \tJSON config file")
	_, _ = fmt.Fprintln(w, "  -env-file string\n    \tdotenv file loaded into the environment")
}
