package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.WithError(err).Error("Conversion failed")
		os.Exit(1)
	}
}
