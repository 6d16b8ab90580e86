package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itsatony/go-funcy/storage"
)

func (a *app) storeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   CmdNameStore,
		Short: StoreShort,
	}

	var templatePath string
	put := &cobra.Command{
		Use:   CmdNamePut + " NAME",
		Short: StorePutShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readInput(templatePath, a.stdin)
			if err != nil {
				return withExitCode(ExitCodeInputError, ErrMsgReadFileFailed, err)
			}
			store, err := a.openStore()
			if err != nil {
				return err
			}
			tmpl := &storage.StoredTemplate{Name: args[0], Source: string(source)}
			if err := store.Save(cmd.Context(), tmpl); err != nil {
				return storeError(err)
			}
			fmt.Fprintf(a.stdout, FmtLine, tmpl.ID)
			return nil
		},
	}
	put.Flags().StringVarP(&templatePath, FlagTemplate, FlagTemplateShort, InputSourceStdin, FlagUsageTemplate)

	get := &cobra.Command{
		Use:   CmdNameGet + " NAME",
		Short: StoreGetShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			tmpl, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return storeError(err)
			}
			_, err = fmt.Fprint(a.stdout, tmpl.Source)
			return err
		},
	}

	list := &cobra.Command{
		Use:   CmdNameList,
		Short: StoreListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			names, err := store.List(cmd.Context())
			if err != nil {
				return storeError(err)
			}
			for _, name := range names {
				fmt.Fprintf(a.stdout, FmtLine, name)
			}
			return nil
		},
	}

	del := &cobra.Command{
		Use:   CmdNameDelete + " NAME",
		Short: StoreDeleteShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			if err := store.Delete(cmd.Context(), args[0]); err != nil {
				return storeError(err)
			}
			return nil
		},
	}

	cmd.AddCommand(put, get, list, del)
	return cmd
}

// storeError maps a missing template to an input error.
func storeError(err error) error {
	if errors.Is(err, storage.ErrTemplateNotFound) {
		return withExitCode(ExitCodeInputError, ErrMsgStoreFailed, err)
	}
	return withExitCode(ExitCodeError, ErrMsgStoreFailed, err)
}
