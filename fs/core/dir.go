package core

import "errors"

// IsDir reports whether name exists and is a directory, following symbolic
// links. A missing path is reported as (false, nil); any other Stat failure
// is returned.
func IsDir(fsys ReadFS, name string) (bool, error) {
	info, err := fsys.Stat(name)
	if err != nil {
		if errors.Is(err, ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
