package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itsatony/go-funcy"
)

// scanConfig holds parsed scan command configuration
type scanConfig struct {
	templatePath string
	format       string
}

// scanTag is the JSON form of one placeholder.
type scanTag struct {
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Content string `json:"content"`
	Name    string `json:"name"`
	Arg     string `json:"arg"`
}

func (a *app) scanCmd() *cobra.Command {
	cfg := &scanConfig{}
	cmd := &cobra.Command{
		Use:     CmdNameScan,
		Short:   ScanShort,
		Example: ScanExample,
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runScan(cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.templatePath, FlagTemplate, FlagTemplateShort, InputSourceStdin, FlagUsageTemplate)
	cmd.Flags().StringVarP(&cfg.format, FlagFormat, FlagFormatShort, FlagDefaultFormat, FlagUsageFormat)
	return cmd
}

func (a *app) runScan(cfg *scanConfig) error {
	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return &exitError{code: ExitCodeUsageError, err: errors.New(ErrMsgInvalidFormat)}
	}

	source, err := readInput(cfg.templatePath, a.stdin)
	if err != nil {
		return withExitCode(ExitCodeInputError, ErrMsgReadFileFailed, err)
	}

	tags := funcy.Scan(string(source))
	out := make([]scanTag, 0, len(tags))
	for _, tag := range tags {
		name, arg := funcy.SplitContent(tag.Content)
		out = append(out, scanTag{Start: tag.Start, End: tag.End, Content: tag.Content, Name: name, Arg: arg})
	}

	if cfg.format == OutputFormatJSON {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return withExitCode(ExitCodeError, ErrMsgJSONMarshalFailed, err)
		}
		fmt.Fprintf(a.stdout, FmtLine, data)
		return nil
	}

	for _, t := range out {
		fmt.Fprintf(a.stdout, FmtScanTag, t.Start, t.End, t.Name, t.Arg)
	}
	return nil
}
