package cube

import "testing"

func TestKey1SolvedIsZero(t *testing.T) {
	c := New()
	if got := c.Key1(); got != 0 {
		t.Errorf("Key1(solved) = %d, want 0", got)
	}
}

func TestKey4SolvedIsZero(t *testing.T) {
	c := New()
	if got := c.Key4(); got != 0 {
		t.Errorf("Key4(solved) = %d, want 0", got)
	}
}

// TestKey1AfterFHasFourBitsSet is scenario S4: applying F to a solved
// cube flips the orientation of exactly the four edges on the F face.
func TestKey1AfterFHasFourBitsSet(t *testing.T) {
	c := New()
	c.Apply(Move{Face: Front, Rot: Cw, Typ: Single})
	key := c.Key1()
	bits := 0
	for i := 0; i < 12; i++ {
		if key&(1<<uint(i)) != 0 {
			bits++
		}
	}
	if bits != 4 {
		t.Errorf("Key1 after F has %d bits set, want 4 (key=%012b)", bits, key)
	}
}

// TestKeyPurity (property 4): two move sequences producing the same
// cube state must produce the same key, regardless of history.
func TestKeyPurity(t *testing.T) {
	a := New()
	a.Apply(Move{Face: Up, Rot: Cw, Typ: Single})
	a.Apply(Move{Face: Down, Rot: Ccw, Typ: Single})

	b := New()
	b.Apply(Move{Face: Down, Rot: Ccw, Typ: Single})
	b.Apply(Move{Face: Up, Rot: Cw, Typ: Single})

	if a.Key1() != b.Key1() || a.Key2() != b.Key2() || a.Key3() != b.Key3() || a.Key4() != b.Key4() {
		t.Error("identical resulting states should produce identical keys regardless of move order")
	}
}

func TestKeysFitDeclaredWidth(t *testing.T) {
	c := New()
	c.ApplyAll([]Move{
		{Face: Right, Rot: Cw, Typ: Single},
		{Face: Up, Rot: Cw, Typ: Dual},
		{Face: Front, Rot: Ccw, Typ: Single},
		{Face: Left, Rot: Cw, Typ: Dual},
	})
	if c.Key1() >= 1<<12 {
		t.Errorf("Key1 %d exceeds 12 bits", c.Key1())
	}
	if c.Key2() >= 1<<36 {
		t.Errorf("Key2 %d exceeds 36 bits", c.Key2())
	}
	if c.Key3() >= 1<<28 {
		t.Errorf("Key3 %d exceeds 28 bits", c.Key3())
	}
	if c.Key4() >= 1<<40 {
		t.Errorf("Key4 %d exceeds 40 bits", c.Key4())
	}
}
