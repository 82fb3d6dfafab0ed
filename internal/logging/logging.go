package logging

import (
	"os"

	"go.uber.org/zap"
)

// Debug is the package-wide debug logger, shared by the scanner and the CLI.
// It is a no-op unless the MDU_DEBUG environment variable is set, in which
// case development-format output is appended to mdu-debug.log.
var Debug *zap.SugaredLogger

func init() {
	if os.Getenv("MDU_DEBUG") == "" {
		Debug = zap.NewNop().Sugar()
		return
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"mdu-debug.log"}

	logger, err := cfg.Build()
	if err != nil {
		// Fall back to stderr if we can't open the file
		logger, err = zap.NewDevelopment()
		if err != nil {
			Debug = zap.NewNop().Sugar()
			return
		}
	}

	Debug = logger.Sugar()
}
