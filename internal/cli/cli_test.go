package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// makeTree creates the fixture used by the command tests and returns its
// root:
//
//	a.txt
//	bin/tool            (0755)
//	docs/guide/intro.md
//	docs/readme.md
func makeTree(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "src")
	files := []struct {
		name string
		data string
		perm os.FileMode
	}{
		{name: "a.txt", data: "alpha", perm: 0o644},
		{name: "bin/tool", data: "#!/bin/sh\n", perm: 0o755},
		{name: "docs/guide/intro.md", data: "intro", perm: 0o644},
		{name: "docs/readme.md", data: "# readme", perm: 0o644},
	}
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f.name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(f.data), f.perm))
		require.NoError(t, os.Chmod(path, f.perm))
	}
	return root
}

// runCLI executes the command tree with args from the working directory
// dir, isolated from DIRCOLL_* variables of the calling environment.
func runCLI(t *testing.T, dir string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	for _, k := range []string{"DIRCOLL_RECURSIVE", "DIRCOLL_EXCLUDE", "DIRCOLL_LOG_LEVEL", "DIRCOLL_OUTPUT"} {
		t.Setenv(k, "")
	}
	t.Chdir(dir)

	var out, errOut bytes.Buffer
	err = run(args, &out, &errOut)
	return out.String(), errOut.String(), err
}
