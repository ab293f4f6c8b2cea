package commands

import (
	"os"

	"petstar/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("petstar error", "err", err.Error())
	os.Exit(1)
}
