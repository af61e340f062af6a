package clicmds

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"web_controls/config"
	"web_controls/infrastructure/storage"
	"web_controls/presentation/terminal"
)

func ConsoleFlags() []cli.Flag {
	return append(commonFlags(),
		&cli.StringFlag{
			Name:  "locators",
			Usage: "yaml file of named locators usable as @name",
		},
	)
}

// Console opens a browser and reads commands from stdin
func Console(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	if ctx.IsSet("locators") {
		cfg.LocatorsFile = ctx.String("locators")
	}
	logger := cfg.NewLogger()

	var locators config.Locators
	if cfg.LocatorsFile != "" {
		if locators, err = config.LoadLocators(cfg.LocatorsFile); err != nil {
			return err
		}
		logger.Infof("Loaded %d locators from %s", len(locators), cfg.LocatorsFile)
	}

	store, err := storage.NewBrowserState(cfg.StateDir)
	if err != nil {
		return err
	}

	driver, err := openDriver(cfg, store, logger)
	if err != nil {
		return err
	}

	console := terminal.NewTerminalInterface(terminal.Deps{
		Driver:   driver,
		Storage:  store,
		Logger:   logger,
		Locators: locators,
		Options:  cfg.ControlOptions(logger),
		BaseURL:  cfg.BaseURL,
	}, os.Stdin, os.Stdout)
	defer func() {
		if err := console.Close(); err != nil {
			logger.Warnf("Failed to close browser: %v", err)
		}
	}()

	runCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return console.Run(runCtx)
}
