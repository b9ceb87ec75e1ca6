package cube

// PhaseKey is the 64-bit (low key_bits meaningful) integer invariant a
// phase's pattern database is addressed by.
type PhaseKey = uint64

var tetrad = [4]int{0, 8, 20, 24}

func contains4(set [4]int, v int) bool {
	for _, x := range set {
		if x == v {
			return true
		}
	}
	return false
}

// axisEdgeIdx selects, for Front/Left faces, the [1,3,7] edge slots of
// the face's 9-position array and, for Back/Right, [1,5,7] — the three
// non-shared edges visited per face of the UD face-chain walk.
func axisEdgeIdx(face Face) [3]int {
	switch face {
	case Front, Left:
		return [3]int{1, 3, 7}
	default:
		return [3]int{1, 5, 7}
	}
}

// Key1 is the 12-bit edge-orientation invariant: one bit per edge of
// the UD/LR axes, 0 when the edge is correctly oriented.
func (c *Cube) Key1() PhaseKey {
	var result uint64
	chain := faceChains[2] // [Back, Right, Front, Left]

	for faceI, face := range chain {
		for _, idx := range axisEdgeIdx(face) {
			id := c.ids[FaceMap[face][idx]]
			s := c.subs[id]
			if s.Kind != KindEdge {
				panic("cube: Key1 expected an edge")
			}

			faceJ, colI := -1, -1
			for j, f := range chain {
				for ci, col := range s.Col {
					if ColSet[f] == col {
						faceJ, colI = j, ci
						break
					}
				}
				if faceJ >= 0 {
					break
				}
			}

			bit := uint64((faceI + 4 - faceJ) % 2)
			if s.Dir[colI] != face {
				bit ^= 1
			}
			result = (result << 1) | bit
		}
	}
	return result
}

// Key2 is the 36-bit invariant of corner orientation plus LR-slice
// edge membership, walked over all 27 grid positions.
func (c *Cube) Key2() PhaseKey {
	var result uint64
	for pos := 0; pos < 27; pos++ {
		id := c.ids[pos]
		s := c.subs[id]
		switch s.Kind {
		case KindCorner:
			result = (result << 3) | uint64(s.Dir[0])
		case KindEdge:
			inLR := contains9(FaceMap[Left], id) || contains9(FaceMap[Right], id)
			bit := uint64(0)
			if inLR {
				bit = 1
			}
			result = (result << 1) | bit
		default:
			continue
		}
	}
	return result
}

func contains9(set [9]int, v int) bool {
	for _, x := range set {
		if x == v {
			return true
		}
	}
	return false
}

// Key3 is the 28-bit phase-3 invariant: Part A (16 bits) is the
// edge/corner parity bits over the Left then Right faces; Part B (12
// bits) is the corner-pairing extension across the three axis pairs.
func (c *Cube) Key3() PhaseKey {
	var result uint64

	// Part A.
	for _, face := range [2]Face{Left, Right} {
		for _, pos := range FaceMap[face] {
			id := c.ids[pos]
			s := c.subs[id]
			switch s.Kind {
			case KindEdge:
				d1 := s.Dir[1]
				opp := oppositeFace(d1)
				bad := s.Col[1] != ColSet[d1] && s.Col[1] != ColSet[opp]
				result = (result << 1) | boolBit(bad)
			case KindCorner:
				bit := contains4(tetrad, pos) != contains4(tetrad, id)
				result = (result << 1) | boolBit(bit)
			default:
				continue
			}
		}
	}

	// Part B.
	axisPairs := [3][2]Face{{Up, Down}, {Front, Back}, {Left, Right}}
	cornerSlots := [4]int{0, 2, 6, 8}
	for _, pair := range axisPairs {
		p1s, p2s := FaceMap[pair[0]], FaceMap[pair[1]]
		for _, slot := range cornerSlots {
			p1, p2 := p1s[slot], p2s[slot]
			c1, c2 := c.stickerColor(c.ids[p1], pair[0]), c.stickerColor(c.ids[p2], pair[1])
			result = (result << 1) | boolBit(c1 == c2)
		}
	}
	return result
}

// Key4 is the 40-bit full-state invariant: 2 bits per edge/corner
// cubie (in identity order) marking whether each of its two tracked
// stickers sits on its canonical face.
func (c *Cube) Key4() PhaseKey {
	var result uint64
	for _, s := range c.subs {
		if s.Kind != KindEdge && s.Kind != KindCorner {
			continue
		}
		hi := boolBit(s.Col[0] != ColSet[s.Dir[0]])
		lo := boolBit(s.Col[1] != ColSet[s.Dir[1]])
		result = (result << 2) | (hi << 1) | lo
	}
	return result
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// oppositeFace returns the face paired with f under the fixed
// Up/Down, Front/Back, Left/Right opposite-pair convention.
func oppositeFace(f Face) Face {
	if int(f)%2 == 0 {
		return f + 1
	}
	return f - 1
}
