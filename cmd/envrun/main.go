package main

import (
	"context"
	"errors"
	"os"

	"github.com/amaumene/envrun/internal/app"
	"github.com/amaumene/envrun/internal/domain"
	log "github.com/sirupsen/logrus"
)

// Setup failures use codes outside the usual child range so they are
// distinguishable from the dispatched suite's own exit codes.
const (
	exitSetupFailure = 2
	exitMissingDir   = 3
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)

	application, err := app.New()
	if err != nil {
		log.WithError(err).Fatal("failed to initialize")
	}

	code, err := application.Run(context.Background())

	if closeErr := application.Close(); closeErr != nil {
		log.WithError(closeErr).Error("closing application")
	}

	if err != nil {
		log.WithError(err).Error("run aborted")
		if errors.Is(err, domain.ErrDirectoryNotFound) {
			os.Exit(exitMissingDir)
		}
		os.Exit(exitSetupFailure)
	}

	os.Exit(code)
}
