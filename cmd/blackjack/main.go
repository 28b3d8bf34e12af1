package main

import (
	"flag"
	"os"
	"strings"

	"blackjack-console/internal/config"
	"blackjack-console/internal/console"

	"github.com/sirupsen/logrus"
)

// Version is the game version
var Version = "v0.0.0-dev"

var practice = flag.Bool("practice", false, "play without wagering")
var balance = flag.Int("balance", 0, "override the configured starting balance")
var seed = flag.Int64("seed", 0, "deterministic shuffle seed (0 uses fresh entropy)")
var name = flag.String("name", "", "player display name")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	startingBalance := cfg.StartingBalance
	if *balance > 0 {
		startingBalance = *balance
	}

	c, err := console.New(os.Stdin, os.Stdout, logrus.WithField("version", Version), console.Options{
		Practice:        *practice,
		StartingBalance: startingBalance,
		MinBet:          cfg.MinBet,
		DefaultBet:      cfg.DefaultBet,
		Seed:            *seed,
		PlayerName:      *name,
	})
	if err != nil {
		logrus.WithError(err).Fatal("could not start game")
	}

	if err := c.Run(); err != nil {
		logrus.WithError(err).Fatal("game ended unexpectedly")
	}
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
