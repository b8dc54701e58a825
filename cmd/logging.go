package cmd

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/HampterPW/Crypted/config"
	"github.com/HampterPW/Crypted/logging"
	"github.com/HampterPW/Crypted/logging/colors"
	"github.com/HampterPW/Crypted/utils"
	"github.com/pkg/errors"
)

// setupGlobalLogger replaces the GlobalLogger with one streaming to stdout and, if a log directory is configured, to a
// structured log file named "log-<unix timestamp>.log". The command logger is moved to the configured level as well.
// Returns a function closing the log file.
func setupGlobalLogger(loggingConfig config.LoggingConfig) (func(), error) {
	if loggingConfig.NoColor {
		colors.DisableColor()
	}
	cmdLogger.SetLevel(loggingConfig.Level)

	logging.GlobalLogger = logging.NewLogger(loggingConfig.Level)
	logging.GlobalLogger.AddWriter(os.Stdout, logging.UNSTRUCTURED, !loggingConfig.NoColor)
	if loggingConfig.LogDirectory == "" {
		return func() {}, nil
	}

	// Create the log file
	if err := utils.MakeDirectory(loggingConfig.LogDirectory); err != nil {
		return nil, err
	}
	filename := "log-" + strconv.FormatInt(time.Now().Unix(), 10) + ".log"
	logFile, err := os.Create(filepath.Join(loggingConfig.LogDirectory, filename))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	logging.GlobalLogger.AddWriter(logFile, logging.STRUCTURED, false)

	return func() {
		logging.GlobalLogger.RemoveWriter(logFile, logging.STRUCTURED, false)
		_ = logFile.Close()
	}, nil
}
