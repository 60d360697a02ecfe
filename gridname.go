package mapview

import (
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"
)

// ErrMalformedTileName is matched (via errors.Is) by every error returned
// from ParseGridName.
var ErrMalformedTileName = errors.New("malformed tile name")

// GridCoord is the integer tile position encoded in a tile's file name.
type GridCoord struct {
	X, Y int
}

// TileNameError describes why a file name could not be decoded.
type TileNameError struct {
	Name   string
	Reason string
	Err    error // underlying strconv error, if any
}

func (e *TileNameError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %q: %s: %v", ErrMalformedTileName, e.Name, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s %q: %s", ErrMalformedTileName, e.Name, e.Reason)
}

// Is makes errors.Is(err, ErrMalformedTileName) succeed.
func (e *TileNameError) Is(target error) bool {
	return target == ErrMalformedTileName
}

func (e *TileNameError) Unwrap() error {
	return e.Err
}

// ParseGridName decodes a file name of the form "<int>_<int>.<ext>" into a
// grid coordinate. Any directory prefix is ignored and the extension
// (everything after the last '.') is optional.
func ParseGridName(name string) (GridCoord, error) {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}

	tokens := strings.Split(base, "_")
	if len(tokens) != 2 {
		return GridCoord{}, &TileNameError{
			Name:   name,
			Reason: fmt.Sprintf("want 2 '_'-separated fields, got %d", len(tokens)),
		}
	}

	x, err := strconv.Atoi(tokens[0])
	if err != nil {
		return GridCoord{}, &TileNameError{Name: name, Reason: "bad x", Err: err}
	}
	y, err := strconv.Atoi(tokens[1])
	if err != nil {
		return GridCoord{}, &TileNameError{Name: name, Reason: "bad y", Err: err}
	}
	return GridCoord{X: x, Y: y}, nil
}
