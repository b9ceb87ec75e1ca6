package cube

import "fmt"

// Encode packs a Move into 5 bits: (face<<2)|(rot<<1)|typ. Face index
// order is Up=0, Down=1, Front=2, Back=3, Left=4, Right=5 (the order
// Face's own iota already uses).
func Encode(m Move) byte {
	return byte(int(m.Face)<<2 | int(m.Rot)<<1 | int(m.Typ))
}

// Decode is the inverse of Encode.
func Decode(b byte) Move {
	return Move{
		Face: Face(b >> 2),
		Rot:  Rotation((b >> 1) & 1),
		Typ:  RotType(b & 1),
	}
}

// ReverseInvert produces the stored-table form of a move sequence: the
// sequence reversed, and each move's rotation swapped (Cw<->Ccw; Dual
// is unaffected). Applied forward, the result undoes moves that were
// applied in order to reach the sequence's end state.
func ReverseInvert(moves []Move) []byte {
	out := make([]byte, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = Encode(m.Inverse())
	}
	return out
}

var faceTokens = map[byte]Face{'U': Up, 'D': Down, 'F': Front, 'B': Back, 'L': Left, 'R': Right}

// ParseMove parses one whitespace-free move token: a face letter
// optionally followed by ' (counter-clockwise) or 2 (double turn).
// A double turn is returned with Rot Ccw, the form MovSet uses.
func ParseMove(tok string) (Move, error) {
	if len(tok) == 0 {
		return Move{}, fmt.Errorf("empty move token")
	}
	face, ok := faceTokens[tok[0]]
	if !ok {
		return Move{}, fmt.Errorf("unrecognized move token %q", tok)
	}
	switch tok[1:] {
	case "":
		return Move{Face: face, Rot: Cw, Typ: Single}, nil
	case "'":
		return Move{Face: face, Rot: Ccw, Typ: Single}, nil
	case "2":
		return Move{Face: face, Rot: Ccw, Typ: Dual}, nil
	default:
		return Move{}, fmt.Errorf("unrecognized move token %q", tok)
	}
}

// ParseMoves parses a whitespace-separated move list. An empty string
// is a valid, no-op move list. The error names the offending token.
func ParseMoves(s string) ([]Move, error) {
	var out []Move
	start := -1
	flush := func(end int) error {
		if start < 0 {
			return nil
		}
		m, err := ParseMove(s[start:end])
		if err != nil {
			return err
		}
		out = append(out, m)
		start = -1
		return nil
	}
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r' {
			if err := flush(i); err != nil {
				return nil, err
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if err := flush(len(s)); err != nil {
		return nil, err
	}
	return out, nil
}

// FormatMoves renders a move list back to whitespace-separated notation.
func FormatMoves(moves []Move) string {
	out := make([]byte, 0, len(moves)*3)
	for i, m := range moves {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, []byte(m.String())...)
	}
	return string(out)
}
