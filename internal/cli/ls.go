package cli

import (
	"fmt"
	"io"

	"github.com/jmgilman/go/collection/collection"
	"github.com/spf13/cobra"
)

type lsOptions struct {
	glob   string
	long   bool
	output string
}

func newLsCommand(a *app) *cobra.Command {
	o := &lsOptions{}
	cmd := &cobra.Command{
		Use:   "ls ROOT...",
		Short: "List the entries of one or more directory trees",
		Long: `List every entry below ROOT in scan order: depth-first, each directory's
children sorted by name and visited before the directory's next sibling.
Names are relative to their root and directories end in "/".

Several roots are listed one after another, as a single collection.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLs(cmd, args, o)
		},
	}

	cmd.Flags().StringVarP(&o.glob, "glob", "g", "", "Only list entries whose name or file name matches the pattern")
	cmd.Flags().BoolVarP(&o.long, "long", "l", false, "Show type, size and modification time")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Output format: text, json or yaml")
	return cmd
}

func (a *app) runLs(cmd *cobra.Command, roots []string, o *lsOptions) error {
	if cmd.Flags().Changed("output") {
		a.cfg.Output = o.output
	}

	c, err := a.openCollection(cmd.Context(), roots)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	var entries []*collection.Entry
	if o.glob != "" {
		entries, err = collection.Glob(c, o.glob)
	} else {
		entries, err = c.Entries()
	}
	if err != nil {
		return err
	}

	records := make([]entryRecord, 0, len(entries))
	for _, e := range entries {
		if e.Name() == "" {
			continue
		}
		r, err := newRecord(e, o.long)
		if err != nil {
			return err
		}
		records = append(records, r)
	}
	a.logger.Debug("listing entries", "roots", len(roots), "entries", len(records))

	return render(cmd.OutOrStdout(), a.cfg.Output, records, func(w io.Writer) error {
		for _, r := range records {
			var err error
			if o.long {
				_, err = fmt.Fprintf(w, "%s %10d %s %s\n",
					r.Mode, r.Size, r.ModTime.Format("2006-01-02 15:04"), displayName(r))
			} else {
				_, err = fmt.Fprintln(w, displayName(r))
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}
