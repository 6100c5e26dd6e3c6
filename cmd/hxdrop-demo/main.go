// Command hxdrop-demo serves the hxdrop documentation and demo site.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/pthm/hxdrop/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Console/debug config so CLI errors get readable timestamps.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr != nil {
			fmt.Fprintln(os.Stderr, err)
		} else {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		}
		os.Exit(1)
	}
}
