package dlproof

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProofMessage_JSON(t *testing.T) {
	m := NewProofMessage(RandomScalar(), helloMessage)
	require.Equal(t, helloMessage, m.Message)

	data, err := json.Marshal(m)
	require.NoError(t, err)

	text := string(data)
	require.True(t, strings.HasPrefix(text, `{"pub_point":`), text)
	require.Less(t, strings.Index(text, `"pub_point"`), strings.Index(text, `"commitment"`))
	require.Less(t, strings.Index(text, `"commitment"`), strings.Index(text, `"response"`))
	require.Less(t, strings.Index(text, `"response"`), strings.Index(text, `"message"`))

	parsed, err := ParseProofMessage(data)
	require.NoError(t, err)
	require.Equal(t, m, parsed)

	ok, err := parsed.Verify()
	require.NoError(t, err)
	require.True(t, ok)

	parsed.Message = "tampered"
	ok, err = parsed.Verify()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestProofMessage_Suite(t *testing.T) {
	suite, err := SuiteByName("secp256k1-sha512")
	require.NoError(t, err)

	m := suite.NewProofMessage(suite.RandomScalar(), helloMessage)
	ok, err := suite.VerifyMessage(m)
	require.NoError(t, err)
	require.True(t, ok)

	// a secp256k1 point is 33 bytes, so the default suite cannot decode it
	_, err = m.Verify()
	require.ErrorIs(t, err, ErrDecode)
}

func TestParseProofMessage_Rejects(t *testing.T) {
	for name, data := range map[string]string{
		"empty":         ``,
		"not json":      `pub_point=abc`,
		"wrong type":    `{"pub_point": 1}`,
		"unknown field": `{"pub_point":"","commitment":"","response":"","message":"","extra":1}`,
	} {
		data := data
		t.Run(name, func(t *testing.T) {
			_, err := ParseProofMessage([]byte(data))
			require.ErrorIs(t, err, ErrDecode)
		})
	}
}

func TestParseProofMessage_MalformedFieldsDeferred(t *testing.T) {
	m, err := ParseProofMessage([]byte(`{"pub_point":"!!","commitment":"","response":"","message":"x"}`))
	require.NoError(t, err)

	ok, err := m.Verify()
	require.False(t, ok)
	require.ErrorIs(t, err, ErrDecode)
}
