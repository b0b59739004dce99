package natural

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// The law tests draw random operands and cross-check the chain arithmetic
// against math/big via the binary rendering.

const lawIterations = 500

func randomOperand(rnd *rand.Rand) uint64 {
	return uint64(rnd.Int63n(1 << 31))
}

func asBig(t *testing.T, n Natural) *big.Int {
	b, ok := new(big.Int).SetString(n.String(), 2)
	require.True(t, ok, "rendering of %v is not a binary numeral", n)
	return b
}

func TestLawCommutativity(t *testing.T) {
	rnd := rand.New(rand.NewSource(4711))
	for i := 0; i < lawIterations; i++ {
		x, y := FromInt(randomOperand(rnd)), FromInt(randomOperand(rnd))
		require.True(t, x.Add(y).Equal(y.Add(x)), "x+y ≠ y+x for x=%v, y=%v", x, y)
		require.True(t, x.Multiply(y).Equal(y.Multiply(x)), "x·y ≠ y·x for x=%v, y=%v", x, y)
	}
}

func TestLawAssociativity(t *testing.T) {
	rnd := rand.New(rand.NewSource(4712))
	for i := 0; i < lawIterations; i++ {
		x := FromInt(randomOperand(rnd))
		y := FromInt(randomOperand(rnd))
		z := FromInt(randomOperand(rnd))
		lhs := x.Add(y).Add(z)
		rhs := x.Add(y.Add(z))
		require.True(t, lhs.Equal(rhs), "(x+y)+z ≠ x+(y+z) for x=%v, y=%v, z=%v", x, y, z)
	}
}

func TestLawInverse(t *testing.T) {
	rnd := rand.New(rand.NewSource(4713))
	for i := 0; i < lawIterations; i++ {
		x, y := FromInt(randomOperand(rnd)), FromInt(randomOperand(rnd))
		require.True(t, x.Add(y).Subtract(y).Equal(x), "(x+y)-y ≠ x for x=%v, y=%v", x, y)
	}
}

func TestLawExponent(t *testing.T) {
	rnd := rand.New(rand.NewSource(4714))
	for i := 0; i < 50; i++ {
		x := FromInt(uint64(rnd.Int63n(8)))
		a := FromInt(uint64(rnd.Int63n(8)))
		b := FromInt(uint64(rnd.Int63n(8)))
		lhs := x.Power(a.Add(b))
		rhs := x.Power(a).Multiply(x.Power(b))
		require.True(t, lhs.Equal(rhs), "x^(a+b) ≠ x^a·x^b for x=%v, a=%v, b=%v", x, a, b)
	}
	require.True(t, Zero.Power(Zero).IsOne(), "0^0 ≠ 1")
}

func TestLawOrderConsistency(t *testing.T) {
	rnd := rand.New(rand.NewSource(4715))
	for i := 0; i < lawIterations; i++ {
		kx, ky := randomOperand(rnd), randomOperand(rnd)
		x, y := FromInt(kx), FromInt(ky)
		want := 0
		if kx < ky {
			want = -1
		} else if kx > ky {
			want = 1
		}
		require.Equal(t, want, x.Compare(y), "ordering of %d and %d", kx, ky)
	}
}

func TestBigIntCrossCheck(t *testing.T) {
	rnd := rand.New(rand.NewSource(4716))
	for i := 0; i < lawIterations; i++ {
		kx, ky := randomOperand(rnd), randomOperand(rnd)
		x, y := FromInt(kx), FromInt(ky)
		bx, by := new(big.Int).SetUint64(kx), new(big.Int).SetUint64(ky)

		sum := asBig(t, x.Add(y))
		require.Zero(t, sum.Cmp(new(big.Int).Add(bx, by)), "%d + %d", kx, ky)

		prod := asBig(t, x.Multiply(y))
		require.Zero(t, prod.Cmp(new(big.Int).Mul(bx, by)), "%d * %d", kx, ky)

		if kx >= ky {
			diff := asBig(t, x.Subtract(y))
			require.Zero(t, diff.Cmp(new(big.Int).Sub(bx, by)), "%d - %d", kx, ky)
		}
	}
}

func TestBigIntPowerCrossCheck(t *testing.T) {
	rnd := rand.New(rand.NewSource(4717))
	for i := 0; i < 25; i++ {
		kx, ky := uint64(rnd.Int63n(16)), uint64(rnd.Int63n(12))
		p := asBig(t, FromInt(kx).Power(FromInt(ky)))
		bp := new(big.Int).Exp(new(big.Int).SetUint64(kx), new(big.Int).SetUint64(ky), nil)
		require.Zero(t, p.Cmp(bp), "%d ^ %d", kx, ky)
	}
}
