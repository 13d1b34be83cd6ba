package dlproof

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// ristretto255 multiples of the generator, from RFC 9496 appendix A.1.
var generatorMultiples = []string{
	"0000000000000000000000000000000000000000000000000000000000000000",
	"e2f2ae0a6abc4e71a884a961c500515f58e30b6aa582dd8db6a65945e08d2d76",
	"6a493210f7499cd17fecb510ae0cea23a110e8d5b901f8acadd3095c73a3b919",
	"94741f5d5d52755ece4f23f044ee27d5d1ea1e2bd196b462166b16152a9d0259",
	"da80862773358b466ffadfe0b3293ab3d9fd53c5ea6c955358f568322daf6a57",
	"e882b131016b52c1d3337080187cf768423efccbb517bb495ab812c4160ff44e",
}

func b64(t *testing.T, hexStr string) string {
	t.Helper()
	b, err := hex.DecodeString(hexStr)
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(b)
}

func TestEncodePoint_GeneratorMultiples(t *testing.T) {
	suite := DefaultSuite()
	curve := suite.Curve()

	for i, want := range generatorMultiples {
		P := curve.ScalarBaseMul(curve.ScalarFrom(uint32(i)))
		require.Equal(t, b64(t, want), suite.EncodePoint(P), "multiple %d", i)

		decoded, err := suite.DecodePoint(b64(t, want))
		require.NoError(t, err)
		require.True(t, decoded.Equals(P))
	}
}

func TestPointRoundTrip(t *testing.T) {
	for name, suite := range suitesUnderTest(t) {
		suite := suite
		t.Run(name, func(t *testing.T) {
			curve := suite.Curve()
			points := []Point{
				curve.BasePoint(),
				curve.ScalarBaseMul(curve.ScalarFrom(0)),
			}
			for i := 0; i < 16; i++ {
				points = append(points, curve.ScalarBaseMul(suite.RandomScalar()))
			}

			for _, P := range points {
				text := suite.EncodePoint(P)
				decoded, err := suite.DecodePoint(text)
				require.NoError(t, err)
				require.True(t, decoded.Equals(P))
				require.Equal(t, text, suite.EncodePoint(decoded))
			}
		})
	}
}

func TestScalarRoundTrip(t *testing.T) {
	for name, suite := range suitesUnderTest(t) {
		suite := suite
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 16; i++ {
				s := suite.RandomScalar()
				text := suite.ScalarToHex(s)
				require.Equal(t, strings.ToLower(text), text)
				require.Len(t, text, 2*suite.Curve().ScalarSize())

				decoded, err := suite.ScalarFromHex(text)
				require.NoError(t, err)
				require.True(t, decoded.Eq(s))
			}
		})
	}
}

func TestDecodePoint_Rejects(t *testing.T) {
	suite := DefaultSuite()
	valid := b64(t, generatorMultiples[1])

	decodeErrors := map[string]string{
		"31 bytes":          base64.StdEncoding.EncodeToString(make([]byte, 31)),
		"33 bytes":          base64.StdEncoding.EncodeToString(make([]byte, 33)),
		"empty":             "",
		"not base64":        "!!!!",
		"url alphabet":      "-_" + valid[2:],
		"missing padding":   strings.TrimRight(valid, "="),
		"line break":        valid[:20] + "\n" + valid[20:],
		"trailing bits set": valid[:42] + string(valid[42]+1) + "=",
	}

	for name, text := range decodeErrors {
		text := text
		t.Run(name, func(t *testing.T) {
			_, err := suite.DecodePoint(text)
			require.ErrorIs(t, err, ErrDecode)
			require.NotErrorIs(t, err, ErrInvalidPoint)
		})
	}

	// RFC 9496 non-canonical and negative field element encodings
	invalidPoints := []string{
		"00ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f",
		"f3ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f",
		"edffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f",
		"0100000000000000000000000000000000000000000000000000000000000000",
		"01ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f",
	}

	for _, enc := range invalidPoints {
		_, err := suite.DecodePoint(b64(t, enc))
		require.ErrorIs(t, err, ErrInvalidPoint, enc)
		require.NotErrorIs(t, err, ErrDecode, enc)
	}
}

func TestScalarFromHex_ReducesModOrder(t *testing.T) {
	suite := DefaultSuite()
	curve := suite.Curve()

	const (
		order        = "edd3f55c1a631258d69cf7a2def9de1400000000000000000000000000000010"
		orderPlusOne = "eed3f55c1a631258d69cf7a2def9de1400000000000000000000000000000010"
		allOnes      = "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"
	)

	s, err := suite.ScalarFromHex(order)
	require.NoError(t, err)
	require.True(t, s.IsZero())

	s, err = suite.ScalarFromHex(orderPlusOne)
	require.NoError(t, err)
	require.True(t, s.Eq(curve.ScalarFrom(1)))
	require.Equal(t, "0100000000000000000000000000000000000000000000000000000000000000", suite.ScalarToHex(s))

	// not injective: 2^256-1 and its reduction decode to the same scalar
	s, err = suite.ScalarFromHex(allOnes)
	require.NoError(t, err)
	reduced, err := suite.ScalarFromHex(suite.ScalarToHex(s))
	require.NoError(t, err)
	require.True(t, s.Eq(reduced))
	require.NotEqual(t, allOnes, suite.ScalarToHex(s))
}

func TestScalarFromHex_Rejects(t *testing.T) {
	suite := DefaultSuite()
	valid := suite.ScalarToHex(suite.RandomScalar())

	for name, text := range map[string]string{
		"empty":      "",
		"odd length": valid[:63],
		"31 bytes":   valid[:62],
		"33 bytes":   valid + "00",
		"non-hex":    "x" + valid[1:],
		"uppercase":  strings.Repeat("AB", 32),
		"whitespace": " " + valid[1:],
	} {
		text := text
		t.Run(name, func(t *testing.T) {
			_, err := suite.ScalarFromHex(text)
			require.ErrorIs(t, err, ErrDecode)
		})
	}
}
