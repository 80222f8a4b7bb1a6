package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"pokeroster/internal/app"
	"pokeroster/internal/display"
	"pokeroster/internal/domain"
	"pokeroster/internal/logging"
)

var (
	appCtx *app.App
	view   *display.View
	logger *zap.Logger
)

// Execute runs the CLI against os.Args.
func Execute(ctx context.Context) error {
	return run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	appCtx, view, logger = nil, nil, nil
	defer shutdown()

	root := newRootCmd(app.NewViper())
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)
	if err != nil {
		if view == nil {
			view = display.New(errOut, false)
		}
		if logger != nil {
			logger.Debug("command failed", zap.Error(err))
		}
		fmt.Fprintln(errOut, view.Message(display.Failure, "Error: "+describe(err)))
	}
	return err
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:           "pokeroster",
		Short:         "Build a Pokémon team from the terminal",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load(v)
			if err != nil {
				return err
			}
			if logger, err = logging.New(cfg.Logging.Level, cfg.Logging.JSON); err != nil {
				return err
			}
			view = display.New(cmd.OutOrStdout(), cfg.Display.Color)

			if appCtx, err = app.New(cfg, logger); err != nil {
				return err
			}
			logger.Debug("config loaded",
				zap.String("home", cfg.Home),
				zap.String("backend", cfg.Storage.Backend),
				zap.String("catalog", cfg.Catalog.BaseURL))
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.String("home", "", "data dir (default ~/.pokeroster)")
	pf.String("backend", "", "storage backend: file, sqlite or memory")
	pf.StringP("passphrase", "p", "", "passphrase to seal the roster file")
	pf.String("catalog-url", "", "catalog base URL (default https://pokeapi.co)")
	pf.Duration("timeout", 0, "catalog request timeout")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.Bool("log-json", false, "log as JSON")
	pf.Bool("no-color", false, "disable colours")

	for key, flag := range map[string]string{
		"home":               "home",
		"storage.backend":    "backend",
		"storage.passphrase": "passphrase",
		"catalog.base_url":   "catalog-url",
		"catalog.timeout":    "timeout",
		"logging.level":      "log-level",
		"logging.json":       "log-json",
	} {
		_ = v.BindPFlag(key, pf.Lookup(flag))
	}
	root.PersistentPreRunE = withNoColor(v, root.PersistentPreRunE)

	root.AddCommand(
		startersCmd(),
		chooseCmd(),
		findCmd(),
		captureCmd(),
		teamCmd(),
		renameCmd(),
		releaseCmd(),
	)
	return root
}

// describe turns err into the line shown to the user. Catalog failures carry
// request details that only belong in the debug log.
func describe(err error) string {
	var dsErr *domain.DataSourceError
	switch {
	case errors.As(err, &dsErr) && errors.Is(err, domain.ErrSpeciesNotFound):
		return fmt.Sprintf("no Pokémon named %q was found", speciesFromURL(dsErr.URL))
	case errors.As(err, &dsErr) && dsErr.Status != 0:
		return fmt.Sprintf("the Pokémon catalog is unavailable (HTTP %d); try again later", dsErr.Status)
	case errors.As(err, &dsErr):
		return "could not reach the Pokémon catalog; check your connection or --catalog-url"
	default:
		return err.Error()
	}
}

func speciesFromURL(raw string) string {
	name := path.Base(raw)
	if unescaped, err := url.PathUnescape(name); err == nil {
		return unescaped
	}
	return name
}

// shutdown runs whether or not the command failed, so PersistentPostRun is not used.
func shutdown() {
	if appCtx != nil {
		if err := appCtx.Close(); err != nil && logger != nil {
			logger.Warn("close store", zap.Error(err))
		}
	}
	if logger != nil {
		// Sync on stderr fails with EINVAL on some platforms; nothing to report.
		_ = logger.Sync()
	}
}

// withNoColor maps --no-color onto display.color before the config is loaded.
func withNoColor(v *viper.Viper, next func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			v.Set("display.color", false)
		}
		return next(cmd, args)
	}
}
