package terrors

import (
	"errors"
	"fmt"
)

var (
	ErrArg      = errors.New("arg error")
	ErrConf     = errors.New("config error")
	ErrFlag     = errors.New("flag error")
	ErrType     = errors.New("type error")
	ErrParse    = errors.New("failed to parse error")
	ErrValue    = errors.New("value error")
	ErrInclude  = errors.New("include error")
	ErrNotFound = errors.New("not found error")
)

func ErrorFlagParse(flag string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %w: flag %s", ErrFlag, ErrParse, flag)
	}
	return fmt.Errorf("%w: %w: flag %s: %w", ErrFlag, ErrParse, flag, err)
}

func ErrorMalformedInclude(line string) error {
	return fmt.Errorf("%w: malformed include directive: '%s'", ErrInclude, line)
}
