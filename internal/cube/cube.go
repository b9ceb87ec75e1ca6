package cube

import "strings"

// faceChains holds the three axis-specific 4-cycles of faces used both
// to reorient a cubie's sticker labels after a turn and (faceChains[2])
// to order edge visitation in Key1. Indexed by the face being turned:
// Front/Back -> chain 0, Left/Right -> chain 1, Up/Down -> chain 2.
var faceChains = [3][4]Face{
	{Up, Right, Down, Left},
	{Up, Front, Down, Back},
	{Back, Right, Front, Left},
}

func chainFor(face Face) [4]Face {
	switch face {
	case Front, Back:
		return faceChains[0]
	case Left, Right:
		return faceChains[1]
	default:
		return faceChains[2]
	}
}

// FaceMap gives, for each face, the nine grid-position indices (into
// Cube.ids) of the cubies currently on that face, in row-major order.
var FaceMap = [6][9]int{
	Up:    {0, 1, 2, 3, 4, 5, 6, 7, 8},
	Down:  {18, 19, 20, 21, 22, 23, 24, 25, 26},
	Front: {6, 7, 8, 15, 16, 17, 24, 25, 26},
	Back:  {0, 1, 2, 9, 10, 11, 18, 19, 20},
	Left:  {0, 3, 6, 9, 12, 15, 18, 21, 24},
	Right: {2, 5, 8, 11, 14, 17, 20, 23, 26},
}

// Cube is the 27-cubie model: ids is the permutation (ids[pos] is the
// identity of the cubie sitting at grid position pos); subs, keyed by
// identity, carries each cubie's type, current orientation and
// immutable color set.
type Cube struct {
	ids  [27]int
	subs [27]Sub
}

// New returns a solved cube.
func New() *Cube {
	c := &Cube{}
	for i := range c.ids {
		c.ids[i] = i
	}
	c.subs = [27]Sub{
		{KindCorner, []Face{Left, Back, Up}, []Color{Orange, Yellow, Blue}},
		{KindEdge, []Face{Back, Up}, []Color{Yellow, Blue}},
		{KindCorner, []Face{Right, Up, Back}, []Color{Red, Blue, Yellow}},
		{KindEdge, []Face{Left, Up}, []Color{Orange, Blue}},
		{KindCenter, []Face{Up}, []Color{Blue}},
		{KindEdge, []Face{Right, Up}, []Color{Red, Blue}},
		{KindCorner, []Face{Left, Up, Front}, []Color{Orange, Blue, White}},
		{KindEdge, []Face{Front, Up}, []Color{White, Blue}},
		{KindCorner, []Face{Right, Front, Up}, []Color{Red, White, Blue}},
		{KindEdge, []Face{Left, Back}, []Color{Orange, Yellow}},
		{KindCenter, []Face{Back}, []Color{Yellow}},
		{KindEdge, []Face{Right, Back}, []Color{Red, Yellow}},
		{KindCenter, []Face{Left}, []Color{Orange}},
		{KindCore, nil, nil},
		{KindCenter, []Face{Right}, []Color{Red}},
		{KindEdge, []Face{Left, Front}, []Color{Orange, White}},
		{KindCenter, []Face{Front}, []Color{White}},
		{KindEdge, []Face{Right, Front}, []Color{Red, White}},
		{KindCorner, []Face{Left, Down, Back}, []Color{Orange, Green, Yellow}},
		{KindEdge, []Face{Back, Down}, []Color{Yellow, Green}},
		{KindCorner, []Face{Right, Back, Down}, []Color{Red, Yellow, Green}},
		{KindEdge, []Face{Left, Down}, []Color{Orange, Green}},
		{KindCenter, []Face{Down}, []Color{Green}},
		{KindEdge, []Face{Right, Down}, []Color{Red, Green}},
		{KindCorner, []Face{Left, Front, Down}, []Color{Orange, White, Green}},
		{KindEdge, []Face{Front, Down}, []Color{White, Green}},
		{KindCorner, []Face{Right, Down, Front}, []Color{Red, Green, White}},
	}
	return c
}

// Clone deep-copies the cube; workers in the PDB builder each own an
// independent clone.
func (c *Cube) Clone() *Cube {
	out := &Cube{ids: c.ids}
	for i, s := range c.subs {
		dir := append([]Face(nil), s.Dir...)
		col := append([]Color(nil), s.Col...)
		out.subs[i] = Sub{Kind: s.Kind, Dir: dir, Col: col}
	}
	return out
}

// IDAt returns the identity of the cubie currently at grid position pos.
func (c *Cube) IDAt(pos int) int { return c.ids[pos] }

// Sub returns the descriptor for cubie identity id.
func (c *Cube) Sub(id int) Sub { return c.subs[id] }

func rotateDir(dir *Face, face Face, chain [4]Face, step int) {
	if *dir == face {
		return
	}
	idx := 0
	for i, f := range chain {
		if f == *dir {
			idx = i
			break
		}
	}
	*dir = chain[((idx+len(chain))+step)%4]
}

func (c *Cube) rotateSub(id int, face Face, step int) {
	chain := chainFor(face)
	s := &c.subs[id]
	if s.Kind != KindEdge && s.Kind != KindCorner {
		return
	}
	for i := range s.Dir {
		rotateDir(&s.Dir[i], face, chain, step)
	}
}

// Apply mutates the cube in place per the move's face/rotation/type.
func (c *Cube) Apply(m Move) {
	rev := false
	switch {
	case m.Face == Front && m.Rot == Cw,
		m.Face == Back && m.Rot == Ccw,
		m.Face == Up && m.Rot == Cw,
		m.Face == Down && m.Rot == Ccw,
		m.Face == Left && m.Rot == Cw,
		m.Face == Right && m.Rot == Ccw:
		rev = true
	}

	winSize := 2
	if m.Typ == Dual {
		winSize = 3
	}

	fm := FaceMap[m.Face]
	for _, ring := range [2][4]int{{0, 2, 8, 6}, {1, 5, 7, 3}} {
		windows := make([][]int, 0, 4)
		for i := 0; i+winSize <= len(ring); i++ {
			windows = append(windows, []int{ring[i], ring[i+winSize-1]})
		}
		if rev {
			for i := len(windows) - 1; i >= 0; i-- {
				w := windows[i]
				c.ids[fm[w[0]]], c.ids[fm[w[1]]] = c.ids[fm[w[1]]], c.ids[fm[w[0]]]
			}
		} else {
			for _, w := range windows {
				c.ids[fm[w[0]]], c.ids[fm[w[1]]] = c.ids[fm[w[1]]], c.ids[fm[w[0]]]
			}
		}
	}

	step := -1
	if rev {
		step = 1
	}
	if m.Typ == Dual {
		step *= 2
	}
	for _, pos := range fm {
		c.rotateSub(c.ids[pos], m.Face, step)
	}
}

// ApplyAll applies a sequence of moves in order.
func (c *Cube) ApplyAll(moves []Move) {
	for _, m := range moves {
		c.Apply(m)
	}
}

// IsSolved reports whether every cubie sits at a position consistent
// with a solved cube: the identity permutation.
func (c *Cube) IsSolved() bool {
	for i, id := range c.ids {
		if i != id {
			return false
		}
	}
	return true
}

func (c *Cube) stickerColor(id int, face Face) Color {
	s := c.subs[id]
	switch s.Kind {
	case KindCenter:
		return s.Col[0]
	case KindEdge, KindCorner:
		for i, d := range s.Dir {
			if d == face {
				return s.Col[i]
			}
		}
	}
	return Void
}

func (c *Cube) rowString(pos []int, face Face, rev bool) string {
	order := [3]int{0, 1, 2}
	if rev {
		order = [3]int{2, 1, 0}
	}
	var sb strings.Builder
	for _, i := range order {
		sb.WriteString(c.stickerColor(c.ids[pos[i]], face).String())
	}
	return sb.String()
}

// Display renders the unfolded net of the six faces: Up on top,
// Left/Front/Right/Back in a row, Down on the bottom. Debugging/UI
// only, no functional contract beyond printing every sticker.
func (c *Cube) Display() string {
	var sb strings.Builder

	up := FaceMap[Up]
	for row := 0; row < 3; row++ {
		sb.WriteString("         " + c.rowString(up[row*3:row*3+3], Up, false) + "\n")
	}
	sb.WriteString("\n")

	left, front, right, back := FaceMap[Left], FaceMap[Front], FaceMap[Right], FaceMap[Back]
	for row := 0; row < 3; row++ {
		sb.WriteString(" " +
			c.rowString(left[row*3:row*3+3], Left, false) + "  " +
			c.rowString(front[row*3:row*3+3], Front, false) + "  " +
			c.rowString(right[row*3:row*3+3], Right, true) + "  " +
			c.rowString(back[row*3:row*3+3], Back, true) + "\n")
	}
	sb.WriteString("\n")

	down := FaceMap[Down]
	for row := 2; row >= 0; row-- {
		sb.WriteString("         " + c.rowString(down[row*3:row*3+3], Down, false) + "\n")
	}
	return sb.String()
}
