package main

import (
	"os"

	"github.com/praetorian-inc/decodescan/pkg/logging"
)

func main() {
	if err := Execute(); err != nil {
		logging.New(os.Stderr, logging.Options{}).Error(err)
		os.Exit(1)
	}
}
