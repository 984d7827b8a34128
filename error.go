package trailmap

import "errors"

var (
	ErrBadConfig     = errors.New("bad config")
	ErrDuplicatePath = errors.New("duplicate path")
	ErrNotExist      = errors.New("not exist")
	ErrNotValid      = errors.New("invalid")
	ErrUnexpected    = errors.New("unexpected")
)
