package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ardnew/yaf/cli/cmd"
	"github.com/ardnew/yaf/lang"
	"github.com/ardnew/yaf/log"
)

// Report logs err at error level with the structured context of the first
// [lang.Error] or [cmd.Error] in its chain.
func Report(ctx context.Context, err error) {
	log.ErrorContext(ctx, "run failed", slog.Any("error", structured(err)))
}

// structured returns the error in err's chain that implements
// [slog.LogValuer], or err itself if there is none.
func structured(err error) error {
	var lerr *lang.Error
	if errors.As(err, &lerr) {
		return lerr
	}

	var cerr *cmd.Error
	if errors.As(err, &cerr) {
		return cerr
	}

	return err
}
