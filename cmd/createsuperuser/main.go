// Command createsuperuser creates the gatepass superuser if none exists.
//
// Credentials come from flags, then GATEPASS_SUPERUSER_* environment
// variables, then built-in defaults. The command always exits with status 0;
// every outcome is reported on stdout.
package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/dmitrijs2005/gatepass/internal/app"
	"github.com/dmitrijs2005/gatepass/internal/config"
)

func main() {
	run(context.Background(), os.Stdout)
}

func run(ctx context.Context, stdout io.Writer) {

	cfg, err := config.LoadConfig()
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			config.Usage(stdout)
			return
		}
		app.ReportStartupError(stdout, err)
		return
	}

	a, err := app.NewApp(ctx, cfg)
	if err != nil {
		app.ReportStartupError(stdout, err)
		return
	}
	defer func() { _ = a.Close() }()

	a.Run(ctx)

}
