package dlproof

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/athanorlabs/go-dlproof/ristretto"
	"github.com/athanorlabs/go-dlproof/ristretto255"
)

func TestComputeChallenge_Deterministic(t *testing.T) {
	for name, suite := range suitesUnderTest(t) {
		suite := suite
		t.Run(name, func(t *testing.T) {
			curve := suite.Curve()
			X := curve.ScalarBaseMul(suite.RandomScalar())
			R := curve.ScalarBaseMul(suite.RandomScalar())

			c1 := suite.ComputeChallenge(X, R, []byte(helloMessage))
			c2 := suite.ComputeChallenge(X.Copy(), R.Copy(), []byte(helloMessage))
			require.True(t, c1.Eq(c2))

			require.False(t, c1.Eq(suite.ComputeChallenge(R, X, []byte(helloMessage))))
			require.False(t, c1.Eq(suite.ComputeChallenge(X, R, []byte("other"))))
		})
	}
}

func TestComputeChallenge_SHA512Wide(t *testing.T) {
	suite := DefaultSuite()
	curve := suite.Curve()
	X := curve.ScalarBaseMul(curve.ScalarFrom(3))
	R := curve.ScalarBaseMul(curve.ScalarFrom(5))

	var preimage []byte
	preimage = append(preimage, X.Encode()...)
	preimage = append(preimage, R.Encode()...)
	preimage = append(preimage, helloMessage...)
	digest := sha512.Sum512(preimage)

	want, err := curve.ScalarFromUniformBytes(digest[:])
	require.NoError(t, err)
	require.True(t, want.Eq(ComputeChallenge(X, R, helloMessage)))

	// reducing only the first half of the digest gives a different scalar
	truncated, err := curve.ScalarFromBytes(digest[:32])
	require.NoError(t, err)
	require.False(t, truncated.Eq(want))
}

// Fixed challenge for X = 3G, R = 5G on ristretto255 / SHA-512. Any conforming
// implementation reproduces it exactly.
func TestComputeChallenge_Vector(t *testing.T) {
	const want = "bc7f4df003278e840ccd9b64614a557f825c345e80ae97d11649ebf24f4fd003"

	for name, suite := range map[string]*Suite{
		"gtank":        DefaultSuite(),
		"go-ristretto": NewSuite(ristretto.NewCurve(), SHA512Challenger()),
	} {
		curve := suite.Curve()
		X := curve.ScalarBaseMul(curve.ScalarFrom(3))
		R := curve.ScalarBaseMul(curve.ScalarFrom(5))
		require.Equal(t, generatorMultiples[3], hex.EncodeToString(X.Encode()), name)
		require.Equal(t, generatorMultiples[5], hex.EncodeToString(R.Encode()), name)

		c := suite.ComputeChallenge(X, R, []byte(helloMessage))
		require.Equal(t, want, suite.ScalarToHex(c), name)
	}
}

// Both ristretto255 backends must agree byte for byte, otherwise proofs from
// one would not verify with the other.
func TestRistrettoBackendsInteroperate(t *testing.T) {
	gtank := NewSuite(ristretto255.NewCurve(), SHA512Challenger())
	bw := NewSuite(ristretto.NewCurve(), SHA512Challenger())

	const secretHex = "5c2f3e1d0a9b8c7d6e5f4a3b2c1d0e0f1a2b3c4d5e6f708192a3b4c5d6e7f801"
	secretA, err := gtank.ScalarFromHex(secretHex)
	require.NoError(t, err)
	secretB, err := bw.ScalarFromHex(secretHex)
	require.NoError(t, err)
	require.Equal(t, gtank.ScalarToHex(secretA), bw.ScalarToHex(secretB))

	proverA := withNonceReader(gtank, seededReader("interop"))
	proverB := withNonceReader(bw, seededReader("interop"))

	for _, msg := range []string{"", helloMessage, "third"} {
		pubA, commitA, respA := proverA.CreateProof(secretA, msg)
		pubB, commitB, respB := proverB.CreateProof(secretB, msg)
		require.Equal(t, pubA, pubB)
		require.Equal(t, commitA, commitB)
		require.Equal(t, respA, respB)

		ok, err := bw.VerifyProof(pubA, commitA, respA, msg)
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = gtank.VerifyProof(pubB, commitB, respB, msg)
		require.NoError(t, err)
		require.True(t, ok)
	}

	for i, enc := range generatorMultiples {
		P, err := bw.DecodePoint(b64(t, enc))
		require.NoError(t, err, "multiple %d", i)
		require.True(t, P.Equals(bw.Curve().ScalarBaseMul(bw.Curve().ScalarFrom(uint32(i)))))
	}
}

func TestChallengers_Distinct(t *testing.T) {
	curve := ristretto255.NewCurve()
	X := curve.ScalarBaseMul(curve.NewRandomScalar())
	R := curve.ScalarBaseMul(curve.NewRandomScalar())
	msg := []byte(helloMessage)

	challengers := []Challenger{
		SHA512Challenger(),
		SHA3Challenger(),
		Blake2bChallenger(),
		NewTranscriptChallenger(DefaultTranscriptLabel),
		NewTranscriptChallenger("another-protocol"),
	}

	seen := make([]Scalar, 0, len(challengers))
	for _, ch := range challengers {
		c := ch.Challenge(curve, X, R, msg)
		require.True(t, c.Eq(ch.Challenge(curve, X, R, msg)), ch.Name())
		for _, prev := range seen {
			require.False(t, c.Eq(prev), ch.Name())
		}
		seen = append(seen, c)
	}
}
