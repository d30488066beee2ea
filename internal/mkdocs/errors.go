package mkdocs

import "errors"

var (
	// ErrConfigParse indicates the existing site configuration could not be
	// read or parsed. Nothing is written when this occurs.
	ErrConfigParse = errors.New("site configuration parse failed")

	// ErrConfigWrite indicates the updated configuration could not be written.
	// The original file is left untouched.
	ErrConfigWrite = errors.New("site configuration write failed")
)
