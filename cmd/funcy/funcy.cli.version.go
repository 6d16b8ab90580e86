package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/itsatony/go-funcy"
)

// versionOutput represents JSON output for version
type versionOutput struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}

func (a *app) versionCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   CmdNameVersion,
		Short: VersionShort,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			switch format {
			case OutputFormatText:
				fmt.Fprintf(a.stdout, VersionTextTemplate, funcy.Version, runtime.Version())
				return nil
			case OutputFormatJSON:
				data, err := json.MarshalIndent(versionOutput{Version: funcy.Version, GoVersion: runtime.Version()}, "", "  ")
				if err != nil {
					return withExitCode(ExitCodeError, ErrMsgJSONMarshalFailed, err)
				}
				fmt.Fprintf(a.stdout, FmtLine, data)
				return nil
			default:
				return &exitError{code: ExitCodeUsageError, err: errors.New(ErrMsgInvalidFormat)}
			}
		},
	}
	cmd.Flags().StringVarP(&format, FlagFormat, FlagFormatShort, FlagDefaultFormat, FlagUsageFormat)
	return cmd
}
