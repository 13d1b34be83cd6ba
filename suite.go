package dlproof

import (
	"fmt"
	"io"
	"sort"

	"github.com/athanorlabs/go-dlproof/ed25519"
	"github.com/athanorlabs/go-dlproof/ristretto255"
	"github.com/athanorlabs/go-dlproof/secp256k1"
)

// DefaultSuiteName names the ristretto255 / SHA-512 suite.
const DefaultSuiteName = "ristretto255-sha512"

// Suite fixes the group and the challenge derivation used by a proof. Provers
// and verifiers must use the same suite.
type Suite struct {
	curve      Curve
	challenger Challenger

	// source of nonce entropy; nil means crypto/rand.Reader
	nonces io.Reader
}

// NewSuite returns a suite over curve deriving challenges with challenger.
func NewSuite(curve Curve, challenger Challenger) *Suite {
	return &Suite{
		curve:      curve,
		challenger: challenger,
	}
}

// DefaultSuite returns the ristretto255 / SHA-512 suite.
func DefaultSuite() *Suite {
	return NewSuite(ristretto255.NewCurve(), SHA512Challenger())
}

var suites = map[string]func() *Suite{
	DefaultSuiteName: DefaultSuite,
	"ristretto255-sha3-512": func() *Suite {
		return NewSuite(ristretto255.NewCurve(), SHA3Challenger())
	},
	"ristretto255-blake2b-512": func() *Suite {
		return NewSuite(ristretto255.NewCurve(), Blake2bChallenger())
	},
	"ristretto255-merlin": func() *Suite {
		return NewSuite(ristretto255.NewCurve(), NewTranscriptChallenger(DefaultTranscriptLabel))
	},
	"ed25519-sha512": func() *Suite {
		return NewSuite(ed25519.NewCurve(), SHA512Challenger())
	},
	"secp256k1-sha512": func() *Suite {
		return NewSuite(secp256k1.NewCurve(), SHA512Challenger())
	},
}

// SuiteByName returns a registered suite.
func SuiteByName(name string) (*Suite, error) {
	newSuite, ok := suites[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSuite, name)
	}

	return newSuite(), nil
}

// SuiteNames returns the registered suite names in sorted order.
func SuiteNames() []string {
	names := make([]string, 0, len(suites))
	for name := range suites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns "<curve>-<challenge>", e.g. "ristretto255-sha512".
func (s *Suite) Name() string {
	return s.curve.Name() + "-" + s.challenger.Name()
}

func (s *Suite) Curve() Curve {
	return s.curve
}

func (s *Suite) Challenger() Challenger {
	return s.challenger
}
