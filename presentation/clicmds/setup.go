// Package clicmds holds the actions behind the command line subcommands.
package clicmds

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"web_controls/config"
	"web_controls/domain/interfaces"
	"web_controls/infrastructure/browser"
)

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "env",
			Usage: "env file to read settings from",
			Value: ".env",
		},
		&cli.StringFlag{
			Name:  "driver",
			Usage: "browser backend, playwright or selenium",
		},
		&cli.BoolFlag{
			Name:  "headless",
			Usage: "run the browser without a window",
		},
		&cli.StringFlag{
			Name:  "url",
			Usage: "base url of the site under test",
		},
	}
}

// loadConfig reads the env file and lets flags override it
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx.String("env"))
	if err != nil {
		return nil, err
	}
	if ctx.IsSet("driver") {
		if cfg.Driver, err = config.ParseDriver(ctx.String("driver")); err != nil {
			return nil, err
		}
	}
	if ctx.IsSet("headless") {
		cfg.Headless = ctx.Bool("headless")
	}
	if ctx.IsSet("url") {
		cfg.BaseURL = ctx.String("url")
	}
	return cfg, nil
}

func openDriver(cfg *config.Config, storage interfaces.Storage, logger *logrus.Logger) (interfaces.Driver, error) {
	switch cfg.Driver {
	case config.DriverPlaywright:
		return browser.NewBrowserController(cfg.BrowserOptions(), storage, logger)
	case config.DriverSelenium:
		return browser.NewSeleniumController(cfg.BrowserOptions(), logger)
	}
	return nil, fmt.Errorf("unknown browser driver %q", cfg.Driver)
}
