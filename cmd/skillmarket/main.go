// Command skillmarket operates SkillMarket contract deployed on Neo blockchain:
// deploys and updates it, lists offers, dumps its storage and exports the
// ledger into SQLite.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	app := cli.NewApp()
	app.Name = "skillmarket"
	app.Usage = "SkillMarket contract management tool"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
	app.Commands = []cli.Command{
		deployCommand,
		offersCommand,
		dumpCommand,
		exportCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger returns console logger with the level depending on global
// --debug flag.
func newLogger(c *cli.Context) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if c.GlobalBool("debug") {
		cfg.Level.SetLevel(zapcore.DebugLevel)
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return l, nil
}
