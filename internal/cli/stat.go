package cli

import (
	"fmt"
	"io"

	"github.com/jmgilman/go/collection/errors"
	"github.com/spf13/cobra"
)

type statOptions struct {
	ignorePath bool
	output     string
}

func newStatCommand(a *app) *cobra.Command {
	o := &statOptions{}
	cmd := &cobra.Command{
		Use:   "stat ROOT NAME",
		Short: "Describe one entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStat(cmd, args[0], args[1], o)
		},
	}

	cmd.Flags().BoolVar(&o.ignorePath, "ignore-path", false, "Match on file name only")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Output format: text, json or yaml")
	return cmd
}

func (a *app) runStat(cmd *cobra.Command, root, name string, o *statOptions) error {
	if cmd.Flags().Changed("output") {
		a.cfg.Output = o.output
	}

	c, err := a.openCollection(cmd.Context(), []string{root})
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	e, found, err := c.GetEntry(name, matchMode(o.ignorePath))
	if err != nil {
		return err
	}
	if !found {
		return errors.WithContext(errors.New(errors.CodeNotFound, "no such entry"), "entry", name)
	}

	r, err := newRecord(e, true)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), a.cfg.Output, r, func(w io.Writer) error {
		kind := "file"
		if r.Dir {
			kind = "directory"
		}
		_, err := fmt.Fprintf(w, "name:     %s\npath:     %s\ntype:     %s\nsize:     %d\nmode:     %s\nmodified: %s\ndos time: %s\n",
			displayName(r), r.Path, kind, r.Size, r.Mode, r.ModTime.Format("2006-01-02 15:04:05"), r.DOSTime)
		return err
	})
}
