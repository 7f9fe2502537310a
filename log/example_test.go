package log_test

import (
	"log/slog"
	"os"

	"github.com/ardnew/yaf/log"
)

func Example_levels() {
	logger := log.Make(os.Stdout,
		log.WithLevel(log.LevelWarn),
		log.WithTimeLayout("none"),
		log.WithPretty(false))

	logger.Info("hidden")
	logger.Warn("using builtin config", slog.String("path", "/missing/yaf.conf"))
	// Output:
	// level=WARN msg="using builtin config" path=/missing/yaf.conf
}

func Example_json() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatJSON),
		log.WithTimeLayout("none"),
		log.WithPretty(false))

	logger.Error("render failed", slog.String("directive", "{@bogus}"))
	// Output:
	// {"level":"ERROR","msg":"render failed","directive":"{@bogus}"}
}
