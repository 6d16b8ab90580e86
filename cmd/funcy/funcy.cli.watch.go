package main

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/itsatony/go-funcy"
)

// watchConfig holds parsed watch command configuration
type watchConfig struct {
	templatePath string
	outputPath   string
}

func (a *app) watchCmd() *cobra.Command {
	cfg := &watchConfig{}
	cmd := &cobra.Command{
		Use:     CmdNameWatch,
		Short:   WatchShort,
		Example: WatchExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runWatch(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.templatePath, FlagTemplate, FlagTemplateShort, "", FlagUsageTemplate)
	cmd.Flags().StringVarP(&cfg.outputPath, FlagOutput, FlagOutputShort, FlagDefaultOutput, FlagUsageOutput)
	return cmd
}

func (a *app) runWatch(ctx context.Context, cfg *watchConfig) error {
	if cfg.templatePath == "" {
		return &exitError{code: ExitCodeUsageError, err: errors.New(ErrMsgMissingTemplate)}
	}
	if cfg.templatePath == InputSourceStdin {
		return &exitError{code: ExitCodeUsageError, err: errors.New(ErrMsgWatchStdinForbidden)}
	}

	hs, err := a.handlers()
	if err != nil {
		return err
	}
	r := funcy.New(funcy.WithLogger(a.logger), funcy.WithHandlers(hs))

	renderOnce := func() error {
		source, err := readInput(cfg.templatePath, a.stdin)
		if err != nil {
			return withExitCode(ExitCodeInputError, ErrMsgReadFileFailed, err)
		}
		r.SetTemplate(string(source))
		out, err := r.Render()
		if err != nil {
			return withExitCode(ExitCodeError, ErrMsgRenderFailed, err)
		}
		if err := writeOutput(cfg.outputPath, []byte(out), a.stdout); err != nil {
			return withExitCode(ExitCodeError, ErrMsgWriteOutputFailed, err)
		}
		return nil
	}

	// The first render must succeed; later failures are logged and the
	// watch goes on so the user can fix the file.
	if err := renderOnce(); err != nil {
		return err
	}
	if err := watchFile(ctx, cfg.templatePath, renderOnce, a.logger); err != nil {
		return withExitCode(ExitCodeError, ErrMsgWatchFailed, err)
	}
	return nil
}

// watchFile calls onChange after every write to path until ctx is done.
// The parent directory is watched so editors that replace the file by
// rename are still seen.
func watchFile(ctx context.Context, path string, onChange func() error, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}
	logger.Info(LogMsgWatchStarted, zap.String(LogFieldPath, path))

	baseName := filepath.Base(path)
	for {
		select {
		case <-ctx.Done():
			logger.Info(LogMsgWatchStopped, zap.String(LogFieldPath, path))
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := onChange(); err != nil {
				logger.Warn(LogMsgWatchFailed, zap.String(LogFieldPath, path), zap.Error(err))
				continue
			}
			logger.Info(LogMsgWatchRendered, zap.String(LogFieldPath, path), zap.String(LogFieldEvent, event.Op.String()))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn(LogMsgWatchError, zap.Error(err))
		}
	}
}
