package cli

import (
	"io"

	"github.com/jmgilman/go/collection/errors"
	"github.com/spf13/cobra"
)

func newCatCommand(a *app) *cobra.Command {
	var ignorePath bool
	cmd := &cobra.Command{
		Use:   "cat ROOT NAME",
		Short: "Write a file's contents to standard output",
		Long: `Write the contents of the file NAME, relative to ROOT, to standard output.
With --ignore-path only the file name part of NAME is compared and the
first entry in scan order with that file name is used.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCat(cmd, args[0], args[1], ignorePath)
		},
	}

	cmd.Flags().BoolVar(&ignorePath, "ignore-path", false, "Match on file name only")
	return cmd
}

func (a *app) runCat(cmd *cobra.Command, root, name string, ignorePath bool) error {
	c, err := a.openCollection(cmd.Context(), []string{root})
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	mode := matchMode(ignorePath)
	f, opened, err := c.Open(name, mode)
	if err != nil {
		return err
	}
	if !opened {
		if _, found, err := c.GetEntry(name, mode); err == nil && found {
			return errors.WithContext(errors.New(errors.CodeInvalidInput, "entry is a directory"), "entry", name)
		}
		return errors.WithContext(errors.New(errors.CodeNotFound, "no such entry"), "entry", name)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(cmd.OutOrStdout(), f); err != nil {
		return errors.WrapWithContext(err, errors.CodeIO, "failed to read entry",
			map[string]interface{}{"entry": name})
	}
	return nil
}
