package cli

import (
	"fmt"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/jmgilman/go/collection/collection"
	"github.com/jmgilman/go/collection/errors"
	"github.com/jmgilman/go/collection/fs/billy"
	"github.com/jmgilman/go/collection/fs/core"
	"github.com/spf13/cobra"
)

func newExtractCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "extract ROOT DEST",
		Short: "Copy the regular files of a tree into DEST",
		Long: `Copy every directory and regular file below ROOT into DEST, keeping
relative names and permission bits. Symbolic links and other special files
are skipped. Every target path is resolved inside DEST, so links already
present in DEST cannot redirect writes outside it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExtract(cmd, args[0], args[1])
		},
	}
}

func (a *app) runExtract(cmd *cobra.Command, root, dest string) error {
	c, err := a.openCollection(cmd.Context(), []string{root})
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	abs, err := filepath.Abs(dest)
	if err != nil {
		return errors.WrapWithContext(err, errors.CodeInvalidInput, "invalid destination",
			map[string]interface{}{"dest": dest})
	}
	dest = abs

	var local core.FS = billy.NewLocal()
	if err := local.MkdirAll(dest, 0o755); err != nil {
		return errors.WrapWithContext(err, errors.CodeIO, "failed to create destination",
			map[string]interface{}{"dest": dest})
	}
	out, err := local.Chroot(dest)
	if err != nil {
		return errors.WrapWithContext(err, errors.CodeIO, "failed to open destination",
			map[string]interface{}{"dest": dest})
	}
	a.logger.Debug("extracting", "root", c.Name(), "dest", dest, "fs", out.Type().String())

	entries, err := c.Entries()
	if err != nil {
		return err
	}

	files := 0
	for _, e := range entries {
		if e.Name() == "" {
			continue
		}
		copied, err := a.extractEntry(c, e, out, dest)
		if err != nil {
			return err
		}
		if copied {
			files++
		}
	}

	a.logger.Info("extraction complete", "root", c.Name(), "dest", dest, "files", files)
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "extracted %d files to %s\n", files, dest)
	return err
}

// extractEntry recreates e inside out, a filesystem rooted at dest. Links
// already present in dest are resolved by securejoin as if dest were the
// filesystem root. It reports whether a file was copied.
func (a *app) extractEntry(c collection.Collection, e *collection.Entry, out core.WriteFS, dest string) (bool, error) {
	resolved, err := securejoin.SecureJoin(dest, filepath.FromSlash(e.Name()))
	if err != nil {
		return false, errors.WrapWithContext(err, errors.CodeIO, "failed to resolve target",
			map[string]interface{}{"entry": e.Name()})
	}
	target, err := filepath.Rel(dest, resolved)
	if err != nil {
		return false, errors.WrapWithContext(err, errors.CodeIO, "failed to resolve target",
			map[string]interface{}{"entry": e.Name()})
	}

	if e.IsDir() {
		if err := out.MkdirAll(target, 0o755); err != nil {
			return false, errors.WrapWithContext(err, errors.CodeIO, "failed to create directory",
				map[string]interface{}{"target": target})
		}
		return false, nil
	}

	info, err := e.Info()
	if err != nil {
		return false, err
	}
	if !info.Mode().IsRegular() {
		a.logger.Debug("skipping special file", "entry", e.Name(), "mode", info.Mode().String())
		return false, nil
	}

	f, opened, err := c.Open(e.Name(), collection.Match)
	if err != nil || !opened {
		return false, err
	}
	defer func() { _ = f.Close() }()

	if err := core.CopyTo(out, target, f, info.Mode().Perm()); err != nil {
		return false, errors.WrapWithContext(err, errors.CodeIO, "failed to write file",
			map[string]interface{}{"entry": e.Name(), "target": target})
	}
	a.logger.Debug("extracted file", "entry", e.Name(), "size", info.Size())
	return true, nil
}
