package freegroup_test

import (
	"math/rand"
	"testing"

	"github.com/mkravets/freeword/freegroup"
	"github.com/mkravets/freeword/word"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// intAdd is the integers under addition, the simplest nontrivial
// additive target for Lift.
type intAdd struct{}

func (intAdd) Zero() int        { return 0 }
func (intAdd) Add(a, b int) int { return a + b }
func (intAdd) Neg(a int) int    { return -a }

// intGroup is the same group presented multiplicatively, used where a
// Group is needed directly.
var intGroup = freegroup.Multiplicative[int](intAdd{})

// TestLift_AgreesOnGenerators: lift(f)(of(x)) == f(x).
func TestLift_AgreesOnGenerators(t *testing.T) {
	f := func(r rune) int { return int(r - 'a' + 1) }
	lift := freegroup.Lift(intGroup, f)

	for _, r := range []rune{'a', 'b', 'c'} {
		assert.Equal(t, f(r), lift(freegroup.Of(r)), "lift must agree with f on %q", r)
	}
	assert.Equal(t, 0, lift(freegroup.One[rune]()), "lift must send one to the identity")
}

// TestLift_IntegerAddition: with f(a)=2, f(b)=3 into (ℤ,+),
// lifting a·b·a⁻¹ gives 2 + 3 − 2 = 3.
func TestLift_IntegerAddition(t *testing.T) {
	f := func(r rune) int {
		if r == 'a' {
			return 2
		}

		return 3
	}
	w, err := word.ParseRunes("abA")
	require.NoError(t, err)

	lift := freegroup.Lift(intGroup, f)
	assert.Equal(t, 3, lift(freegroup.Mk(w)))
}

// TestLift_Homomorphism: lift(f)(x·y) == lift(f)(x) + lift(f)(y) on
// random pairs.
func TestLift_Homomorphism(t *testing.T) {
	f := func(r rune) int { return int(r-'a')*5 - 3 }
	lift := freegroup.Lift(intGroup, f)

	rng := rand.New(rand.NewSource(21))
	for trial := 0; trial < 200; trial++ {
		x, y := randElem(rng, 10), randElem(rng, 10)
		assert.Equal(t, lift(x)+lift(y), lift(x.Mul(y)), "lift must be a homomorphism")
		assert.Equal(t, -lift(x), lift(x.Inv()), "lift must preserve inverses")
	}
}

// TestLift_Uniqueness compares the lift against an independently
// written fold that agrees with f on generators: any homomorphism
// agreeing on generators must agree everywhere.
func TestLift_Uniqueness(t *testing.T) {
	f := func(r rune) int { return int(r - 'a' + 2) }
	lift := freegroup.Lift(intGroup, f)

	// Candidate homomorphism: right-to-left fold over the canonical
	// word.  Addition is commutative so it agrees with f on generators
	// and is a homomorphism; uniqueness forces equality with lift.
	candidate := func(x freegroup.Element[rune]) int {
		sum := 0
		w := x.Word()
		for i := len(w) - 1; i >= 0; i-- {
			v := f(w[i].Gen)
			if !w[i].Sign {
				v = -v
			}
			sum += v
		}

		return sum
	}

	rng := rand.New(rand.NewSource(22))
	for trial := 0; trial < 200; trial++ {
		x := randElem(rng, 12)
		assert.Equal(t, candidate(x), lift(x), "homomorphisms agreeing on generators must coincide")
	}
}

// TestMap_TranslatesAndReduces: gluing generators through Map can
// create fresh cancellations, which must collapse.
func TestMap_TranslatesAndReduces(t *testing.T) {
	// a ↦ x, b ↦ y: plain relabeling.
	relabel := freegroup.Map(func(r rune) rune { return r - 'a' + 'x' })
	x := mustElem(t, "abA")
	assert.Equal(t, "xyX", word.FormatRunes(relabel(x).Word()))

	// a, b ↦ a: gluing makes a·b⁻¹ collapse to one.
	glue := freegroup.Map(func(_ rune) rune { return 'a' })
	assert.True(t, glue(mustElem(t, "aB")).IsOne(), "glued inverses must cancel")
}

// TestMap_FunctorLaws: identity and composition.
func TestMap_FunctorLaws(t *testing.T) {
	idMap := freegroup.Map(func(r rune) rune { return r })
	f := func(r rune) rune { return r + 1 }
	g := func(r rune) rune { return r + 2 }

	rng := rand.New(rand.NewSource(23))
	for trial := 0; trial < 100; trial++ {
		x := randElem(rng, 10)
		assert.True(t, idMap(x).Equal(x), "mapping with the identity is the identity")

		viaTwo := freegroup.Map(g)(freegroup.Map(f)(x))
		viaOne := freegroup.Map(func(r rune) rune { return g(f(r)) })(x)
		assert.True(t, viaTwo.Equal(viaOne), "Map must respect composition")
	}
}

// TestMap_IsHomomorphism on random pairs.
func TestMap_IsHomomorphism(t *testing.T) {
	m := freegroup.Map(func(r rune) rune {
		if r == 'c' {
			return 'a' // non-injective on purpose
		}

		return r
	})

	rng := rand.New(rand.NewSource(24))
	for trial := 0; trial < 100; trial++ {
		x, y := randElem(rng, 8), randElem(rng, 8)
		assert.True(t, m(x.Mul(y)).Equal(m(x).Mul(m(y))), "Map must be a homomorphism")
		assert.True(t, m(x.Inv()).Equal(m(x).Inv()), "Map must preserve inverses")
	}
}

// TestMultiplicative_Adapter sanity-checks the additive adapter itself.
func TestMultiplicative_Adapter(t *testing.T) {
	assert.Equal(t, 0, intGroup.Identity())
	assert.Equal(t, 7, intGroup.Op(3, 4))
	assert.Equal(t, -5, intGroup.Inverse(5))
}
