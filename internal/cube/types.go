// Package cube models the 3x3x3 Rubik's cube as 27 cubies and the
// face-turn group action on them.
package cube

// Face identifies one of the six faces of the cube.
type Face int

const (
	Up Face = iota
	Down
	Front
	Back
	Left
	Right
)

func (f Face) String() string {
	return [...]string{"U", "D", "F", "B", "L", "R"}[f]
}

// Color identifies a sticker color. Void marks a non-existent sticker
// (used only defensively; every real cubie sticker carries a real color).
type Color int

const (
	Blue Color = iota
	Green
	White
	Yellow
	Orange
	Red
	Void
)

func (c Color) String() string {
	return [...]string{"B", "G", "W", "Y", "O", "R", " "}[c]
}

// ColSet lists the six sticker colors in the order key_gen_2/3/4 index
// them by Face: ColSet[f] is the canonical color of Face f on a solved
// cube.
var ColSet = [...]Color{Up: Blue, Down: Green, Front: White, Back: Yellow, Left: Orange, Right: Red}

// Rotation is the turning sense of a quarter turn. It is meaningless
// for a Dual (180 degree) move but is still stored.
type Rotation int

const (
	Cw Rotation = iota
	Ccw
)

func (r Rotation) String() string {
	if r == Ccw {
		return "'"
	}
	return ""
}

// RotType distinguishes a 90-degree turn from a 180-degree turn.
type RotType int

const (
	Single RotType = iota
	Dual
)

// Move is one face rotation: Face, turning sense and quarter/half
// distinction.
type Move struct {
	Face Face
	Rot  Rotation
	Typ  RotType
}

func (m Move) String() string {
	if m.Typ == Dual {
		return m.Face.String() + "2"
	}
	return m.Face.String() + m.Rot.String()
}

// Inverse returns the move that undoes m: same face and type, opposite
// rotation (Dual is its own inverse either way).
func (m Move) Inverse() Move {
	rot := Cw
	if m.Rot == Cw {
		rot = Ccw
	}
	return Move{Face: m.Face, Rot: rot, Typ: m.Typ}
}

// MovSet is the canonical 18-move list, ordered so that the first N
// entries are exactly the allowed-move subset of one phase of
// Thistlethwaite's reduction (truncating to 6, 10, 14, 18 yields the
// phase-4, phase-3, phase-2, phase-1 subsets respectively).
var MovSet = [18]Move{
	{Left, Ccw, Dual}, {Right, Ccw, Dual}, {Front, Ccw, Dual}, {Back, Ccw, Dual}, {Up, Ccw, Dual}, {Down, Ccw, Dual},
	{Left, Ccw, Single}, {Right, Ccw, Single}, {Left, Cw, Single}, {Right, Cw, Single},
	{Front, Ccw, Single}, {Back, Ccw, Single}, {Front, Cw, Single}, {Back, Cw, Single},
	{Up, Ccw, Single}, {Down, Ccw, Single}, {Up, Cw, Single}, {Down, Cw, Single},
}

// SubKind is the physical type of a cubie, fixed by its identity.
type SubKind int

const (
	KindCore SubKind = iota
	KindCenter
	KindEdge
	KindCorner
)

// Sub is one of the 27 cubie descriptors, keyed by identity (not
// position). Dir holds the cubie's current orientation (which face
// each of its stickers currently points toward); Col is immutable and
// identifies the cubie. Core uses neither slice. Center uses one slot
// of each, Edge two, Corner three.
type Sub struct {
	Kind SubKind
	Dir  []Face
	Col  []Color
}
