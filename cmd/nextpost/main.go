// Command nextpost prints the path of the next free numbered post file.
//
//	nextpost --dir content/posts --title "Lazy sequences"
//	content/posts/0043-lazy-sequences.md
package main

import (
	"os"

	"github.com/DavidRaab/website-sub000/errors"
	"github.com/DavidRaab/website-sub000/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.GetGlobalLogger().WithError(err).Error("nextpost failed")
		os.Exit(errors.ExitCode(err))
	}
}
