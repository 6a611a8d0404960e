package crontab

import (
	"errors"
	"fmt"
)

// ErrParse indicates a malformed crontab expression. Parsing is
// all-or-nothing: no partial Schedule is ever returned alongside it.
var ErrParse = errors.New("parse crontab expression")

// errParse returns a parse error with a custom error message, which
// unwraps to ErrParse.
func errParse(message string) error {
	return fmt.Errorf("%w: %s", ErrParse, message)
}
