package lister

import "errors"

var (
	ErrRootNotFound     = errors.New("root directory does not exist")
	ErrRootNotDir       = errors.New("root is not a directory")
	ErrRootUnreadable   = errors.New("root directory is not readable")
	ErrOutputUnwritable = errors.New("output file is not writable")
	ErrWalk             = errors.New("walk failed")
	ErrWrite            = errors.New("write failed")
)
