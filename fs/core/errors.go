package core

import "io/fs"

// Sentinels reported by filesystem implementations. They are the io/fs
// values, so errors.Is matches either name.
var (
	ErrNotExist   = fs.ErrNotExist
	ErrPermission = fs.ErrPermission
)
