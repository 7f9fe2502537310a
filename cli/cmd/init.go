package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ardnew/yaf/log"
	"github.com/ardnew/yaf/pkg"
)

const (
	defaultDirMode  os.FileMode = 0o700
	defaultFileMode os.FileMode = 0o644
)

// Init writes the builtin template to the configuration path.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`

	Config string `arg:"" default:"${config}" help:"Destination file." optional:"" type:"path"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	// Check if file exists and force not set
	_, err = os.Stat(i.Config)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", i.Config)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	err = os.MkdirAll(filepath.Dir(i.Config), defaultDirMode)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", i.Config)).
			Wrap(err)
	}

	err = os.WriteFile(i.Config, []byte(pkg.Builtin), defaultFileMode)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", i.Config)).
			Wrap(err)
	}

	log.InfoContext(ctx, "initialized configuration file",
		slog.String("path", i.Config),
	)

	return nil
}
