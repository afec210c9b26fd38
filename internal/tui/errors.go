package tui

import "errors"

// ErrNoSearchVariants is returned by New when there is no form to show.
var ErrNoSearchVariants = errors.New("no search variants configured")
