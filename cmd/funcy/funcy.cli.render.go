package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/itsatony/go-funcy"
	"github.com/itsatony/go-funcy/storage"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	templatePath string
	storedName   string
	outputPath   string
	ask          bool
}

func (a *app) renderCmd() *cobra.Command {
	cfg := &renderConfig{}
	cmd := &cobra.Command{
		Use:     CmdNameRender,
		Short:   RenderShort,
		Example: RenderExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runRender(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.templatePath, FlagTemplate, FlagTemplateShort, "", FlagUsageTemplate)
	cmd.Flags().StringVarP(&cfg.storedName, FlagName, FlagNameShort, "", FlagUsageName)
	cmd.Flags().StringVarP(&cfg.outputPath, FlagOutput, FlagOutputShort, FlagDefaultOutput, FlagUsageOutput)
	cmd.Flags().BoolVar(&cfg.ask, FlagAsk, false, FlagUsageAsk)
	return cmd
}

func (a *app) runRender(cmd *cobra.Command, cfg *renderConfig) error {
	if (cfg.templatePath == "") == (cfg.storedName == "") {
		return &exitError{code: ExitCodeUsageError, err: errors.New(ErrMsgTemplateSource)}
	}

	hs, err := a.handlers()
	if err != nil {
		return err
	}
	if cfg.ask {
		hs[HandlerNameAsk] = askHandler(a.ask)
	}

	r := funcy.New(funcy.WithLogger(a.logger), funcy.WithHandlers(hs))

	if cfg.templatePath != "" {
		source, err := readInput(cfg.templatePath, a.stdin)
		if err != nil {
			return withExitCode(ExitCodeInputError, ErrMsgReadFileFailed, err)
		}
		r.SetTemplate(string(source))
	} else {
		store, err := a.openStore()
		if err != nil {
			return err
		}
		if err := storage.Load(cmd.Context(), store, cfg.storedName, r); err != nil {
			if errors.Is(err, storage.ErrTemplateNotFound) {
				return withExitCode(ExitCodeInputError, ErrMsgStoreFailed, err)
			}
			return withExitCode(ExitCodeError, ErrMsgStoreFailed, err)
		}
	}

	out, err := r.Render()
	if err != nil {
		return withExitCode(ExitCodeError, ErrMsgRenderFailed, err)
	}

	if err := writeOutput(cfg.outputPath, []byte(out), a.stdout); err != nil {
		return withExitCode(ExitCodeError, ErrMsgWriteOutputFailed, err)
	}
	a.logger.Debug(LogMsgRenderComplete, zap.Int(LogFieldBytes, len(out)))
	return nil
}
