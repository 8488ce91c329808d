// Package loc has routines for tracking file locations.
package loc

import "fmt"

// A Pos describes a location in a source file.
// The zero Pos describes no location; Known reports false for it.
type Pos struct {
	Path string
	Line int
	Col  int
}

// GetPos returns itself.
// This is useful so that Pos can be embedded in a struct
// and that struct can implement interface{ GetPos() Pos }.
func (p Pos) GetPos() Pos { return p }

// Known reports whether the position refers to an actual source location.
func (p Pos) Known() bool { return p.Line > 0 }

func (p Pos) String() string {
	switch {
	case !p.Known():
		return "?"
	case p.Path == "":
		return fmt.Sprintf("%d.%d", p.Line, p.Col)
	default:
		return fmt.Sprintf("%s:%d.%d", p.Path, p.Line, p.Col)
	}
}
