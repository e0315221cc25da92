package ed255

import (
	"crypto/rand"
	"math/big"
	"testing"
)

func randExponent(t *testing.T) *big.Int {
	t.Helper()
	k, err := rand.Int(rand.Reader, curveOrder)
	if err != nil {
		t.Fatal(err)
	}
	return k
}

func TestPoint(t *testing.T) {
	g := &Ed25519{}

	t.Run("AddSub", func(t *testing.T) {
		P := g.NewPoint().ScalarMult(randExponent(t), g.Generator())
		Q := g.NewPoint().ScalarMult(randExponent(t), g.Generator())

		sum := g.NewPoint().Add(P, Q)
		diff := g.NewPoint().Sub(sum, Q)

		if !diff.Equal(P) {
			t.Error("(P+Q)-Q != P")
		}
	})

	t.Run("Negate", func(t *testing.T) {
		P := g.NewPoint().ScalarMult(randExponent(t), g.Generator())
		negP := g.NewPoint().Negate(P)

		result := g.NewPoint().Add(P, negP)

		if !result.IsIdentity() {
			t.Error("P + (-P) != identity")
		}
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		P := g.NewPoint().ScalarMult(randExponent(t), g.Generator())

		bytes := P.Bytes()
		if len(bytes) != encodedLen {
			t.Fatalf("point encoding is %d bytes, want %d", len(bytes), encodedLen)
		}
		restored, err := g.NewPoint().SetBytes(bytes)
		if err != nil {
			t.Fatal(err)
		}

		if !restored.Equal(P) {
			t.Error("point bytes roundtrip failed")
		}
	})

	t.Run("SetBytesRejectsGarbage", func(t *testing.T) {
		garbage := make([]byte, encodedLen)
		for i := range garbage {
			garbage[i] = 0xff
		}
		if _, err := g.NewPoint().SetBytes(garbage); err == nil {
			t.Error("expected error for invalid point encoding")
		}
		if _, err := g.NewPoint().SetBytes([]byte{0x01}); err == nil {
			t.Error("expected error for truncated encoding")
		}
	})

	t.Run("IsIdentity", func(t *testing.T) {
		identity := g.NewPoint()
		if !identity.IsIdentity() {
			t.Error("new point should be identity")
		}

		gen := g.Generator()
		if gen.IsIdentity() {
			t.Error("generator should not be identity")
		}
	})

	t.Run("ScalarMultReduces", func(t *testing.T) {
		a := randExponent(t)
		shifted := new(big.Int).Add(a, curveOrder)

		P := g.NewPoint().ScalarMult(a, g.Generator())
		Q := g.NewPoint().ScalarMult(shifted, g.Generator())

		if !P.Equal(Q) {
			t.Error("exponent not reduced modulo the subgroup order")
		}
	})

	t.Run("OrderTimesGeneratorIsIdentity", func(t *testing.T) {
		P := g.NewPoint().ScalarMult(curveOrder, g.Generator())
		if !P.IsIdentity() {
			t.Error("order * generator != identity")
		}
	})
}

func TestConstants(t *testing.T) {
	g := &Ed25519{}

	if !g.Order().ProbablyPrime(32) {
		t.Error("subgroup order should be prime")
	}

	cofactor := new(big.Int)
	rem := new(big.Int)
	cofactor.DivMod(g.ScalarOrder(), g.Order(), rem)
	if rem.Sign() != 0 {
		t.Error("scalar order is not a multiple of the subgroup order")
	}
	if cofactor.Cmp(big.NewInt(8)) != 0 {
		t.Errorf("cofactor = %s, want 8", cofactor)
	}

	// 2^255 - 19
	want := new(big.Int).Lsh(big.NewInt(1), 255)
	want.Sub(want, big.NewInt(19))
	if g.Modulus().Cmp(want) != 0 {
		t.Error("field modulus should be 2^255 - 19")
	}
}

func TestScalarBytes(t *testing.T) {
	g := &Ed25519{}

	t.Run("LittleEndian", func(t *testing.T) {
		enc, err := g.ScalarBytes(big.NewInt(1))
		if err != nil {
			t.Fatal(err)
		}
		if len(enc) != encodedLen {
			t.Fatalf("encoding is %d bytes, want %d", len(enc), encodedLen)
		}
		if enc[0] != 1 {
			t.Error("value byte should lead in little-endian order")
		}
		for _, b := range enc[1:] {
			if b != 0 {
				t.Error("padding bytes should be zero")
			}
		}
	})

	t.Run("RejectsInvalid", func(t *testing.T) {
		if _, err := g.ScalarBytes(nil); err == nil {
			t.Error("expected error for nil value")
		}
		if _, err := g.ScalarBytes(big.NewInt(-5)); err == nil {
			t.Error("expected error for negative value")
		}
	})
}
