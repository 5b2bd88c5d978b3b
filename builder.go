// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package ctok

import "fmt"

// buildTree folds the flat unit sequence into nested Group nodes.
//
// The fold runs over an explicit frame stack rather than recursing, so
// adversarial nesting depth cannot exhaust the call stack. Each open
// marker pushes a frame; the matching close marker pops it and appends
// the finished group, positioned at its open marker, to the parent
// frame.
//
// A close marker is checked against the kind of the innermost open
// group. A closer of the wrong kind is rejected as a mismatched
// delimiter instead of being absorbed into the nested stream; a closer
// with no open group at all is an unexpected delimiter. Running out of
// input with frames still open is an unterminated group, reported at
// the innermost open marker.
func buildTree(units []unit) (*TokenStream, error) {
	type frame struct {
		delim Delim
		open  Position
		cells []TokenCell
	}

	// frames[0] is the root sequence and has no delimiter.
	frames := []frame{{}}

	for _, u := range units {
		switch u.kind {
		case unitOpen:
			frames = append(frames, frame{delim: u.delim, open: u.pos})

		case unitClose:
			if len(frames) == 1 {
				pos := u.pos
				return nil, NewError("unexpected group delimiter", nil, &pos)
			}
			top := frames[len(frames)-1]
			if top.delim != u.delim {
				pos := u.pos
				return nil, NewError(
					fmt.Sprintf("mismatched delimiter: expected '%s', got '%s'",
						top.delim.Close(), u.delim.Close()),
					nil, &pos)
			}
			frames = frames[:len(frames)-1]
			pos := top.open
			cell := TokenCell{
				Pos:  &pos,
				Tree: GroupTree(top.delim, &TokenStream{cells: top.cells}),
			}
			frames[len(frames)-1].cells = append(frames[len(frames)-1].cells, cell)

		default:
			pos := u.pos
			cell := TokenCell{Pos: &pos}
			switch u.kind {
			case unitIdent:
				cell.Tree = IdentTree(u.ident)
			case unitLit:
				cell.Tree = LitTree(u.lit)
			case unitPunct:
				cell.Tree = PunctTree(u.punct)
			}
			frames[len(frames)-1].cells = append(frames[len(frames)-1].cells, cell)
		}
	}

	if len(frames) > 1 {
		top := frames[len(frames)-1]
		pos := top.open
		return nil, NewError(
			fmt.Sprintf("unterminated group: missing '%s'", top.delim.Close()),
			nil, &pos)
	}
	return &TokenStream{cells: frames[0].cells}, nil
}
