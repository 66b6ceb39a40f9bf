package main

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger reports non-fatal problems on stderr. Interactive commands log
// before and after the alternate screen, never while a program is running.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "blocky"})

func setupLogger(verbose bool) {
	if verbose {
		logger.SetLevel(log.DebugLevel)
		logger.SetReportTimestamp(true)
		return
	}
	logger.SetLevel(log.InfoLevel)
}
