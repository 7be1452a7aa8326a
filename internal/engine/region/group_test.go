package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestGroupEqualsIsOrdered(t *testing.T) {
	a := Of(New(0, 5), New(10, 15))
	b := Of(New(10, 15), New(0, 5))

	assert.True(t, a.Equals(a.Clone()))
	assert.False(t, a.Equals(b), "reordered groups must differ")
	assert.True(t, Group(nil).Equals(Group{}), "nil and empty groups are equal")
}

func TestGroupLast(t *testing.T) {
	_, ok := Group{}.Last()
	assert.False(t, ok)

	last, ok := Of(New(0, 5), New(10, 15)).Last()
	assert.True(t, ok)
	assert.Equal(t, New(10, 15), last)
}

func TestUnion(t *testing.T) {
	saved := Of(New(0, 5))
	live := Of(New(0, 5), New(10, 15))

	got := Union(saved, live)
	assert.Equal(t, Of(New(0, 5), New(10, 15)), got)

	// Inputs are not mutated.
	assert.Equal(t, Of(New(0, 5)), saved)
}

func TestUnionPreservesOrderOfFirstOperand(t *testing.T) {
	got := Union(Of(New(20, 25), New(0, 5)), Of(New(10, 15), New(0, 5)))
	assert.Equal(t, Of(New(20, 25), New(0, 5), New(10, 15)), got)
}

func TestDifference(t *testing.T) {
	a := Of(New(0, 5), New(10, 15), New(20, 25))
	b := Of(New(10, 15))

	assert.Equal(t, Of(New(0, 5), New(20, 25)), Difference(a, b))
	assert.Empty(t, Difference(b, a))
}

func TestDifferenceComparesDirection(t *testing.T) {
	got := Difference(Of(New(0, 5)), Of(New(5, 0)))
	assert.Equal(t, Of(New(0, 5)), got)
}

func TestSymmetricDifference(t *testing.T) {
	prev := Of(New(0, 5))
	live := Of(New(0, 5), New(10, 15))
	assert.Equal(t, Of(New(10, 15)), SymmetricDifference(prev, live))

	a := Of(New(0, 1), New(2, 3))
	b := Of(New(2, 3), New(4, 5))
	assert.Equal(t, Of(New(0, 1), New(4, 5)), SymmetricDifference(a, b))
}

func TestGroupReorient(t *testing.T) {
	g := Of(New(5, 0), New(10, 15))
	assert.Equal(t, Of(New(0, 5), New(10, 15)), g.Reorient())
	assert.Equal(t, Of(New(5, 0), New(10, 15)), g, "original unchanged")
}

func TestGroupString(t *testing.T) {
	assert.Equal(t, "[Region(0→5) Caret(7)]", Of(New(0, 5), Caret(7)).String())
	assert.Equal(t, "[]", Group{}.String())
}

// Property Tests

func genRegion(t *rapid.T, label string) Region {
	anchor := rapid.Int64Range(0, 20).Draw(t, label+"Anchor")
	active := rapid.Int64Range(0, 20).Draw(t, label+"Active")
	return New(Offset(anchor), Offset(active))
}

func genGroup(t *rapid.T, label string) Group {
	n := rapid.IntRange(0, 6).Draw(t, label+"Len")
	g := make(Group, 0, n)
	for i := 0; i < n; i++ {
		g = append(g, genRegion(t, label))
	}
	return g
}

func TestDifferenceWithSelfIsEmpty_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genGroup(t, "a")
		if got := Difference(a, a); len(got) != 0 {
			t.Fatalf("Difference(a, a) = %v, want empty", got)
		}
	})
}

func TestSymmetricDifferenceCommutes_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genGroup(t, "a")
		b := genGroup(t, "b")
		ab := SymmetricDifference(a, b)
		ba := SymmetricDifference(b, a)

		// Same members; only the order differs.
		if len(ab) != len(ba) {
			t.Fatalf("len %d != %d", len(ab), len(ba))
		}
		for _, r := range ab {
			if !ba.Contains(r) {
				t.Fatalf("%v missing from SymmetricDifference(b, a)", r)
			}
		}
	})
}

func TestUnionContainsBoth_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genGroup(t, "a")
		b := genGroup(t, "b")
		u := Union(a, b)

		if !u[:len(a)].Equals(a) {
			t.Fatalf("Union must start with a: %v", u)
		}
		for _, r := range b {
			if !u.Contains(r) {
				t.Fatalf("%v missing from union", r)
			}
		}
		if d := Difference(u, a); len(Difference(d, b)) != 0 {
			t.Fatalf("union holds regions from neither operand: %v", d)
		}
	})
}
