package logger

import (
	"os"

	"go.uber.org/zap"
)

// Logger defaults to a nop so packages can log before (or without)
// full initialisation, as tests do.
var Logger = zap.NewNop()

func InitializeLogger() {
	var err error
	if os.Getenv("ENV") == "prod" {
		Logger, err = zap.NewProduction()
	} else {
		Logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	Logger.Info("logger initialisation complete")
}
