package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itsatony/go-funcy/config"
)

func (a *app) schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   CmdNameSchema,
		Short: SchemaShort,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			data, err := config.Schema()
			if err != nil {
				return withExitCode(ExitCodeError, ErrMsgSchemaFailed, err)
			}
			fmt.Fprintf(a.stdout, FmtLine, data)
			return nil
		},
	}
}
