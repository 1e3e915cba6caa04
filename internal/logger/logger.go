package logger

import (
	"go.uber.org/zap"
)

// Init builds the process-wide logger and installs it via zap.ReplaceGlobals,
// so the rest of the codebase can log with zap.L().
func Init(environment string) error {
	var (
		l   *zap.Logger
		err error
	)

	if environment == "development" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(l)

	return nil
}
