package dlproof

import (
	"errors"
	"fmt"

	"github.com/athanorlabs/go-dlproof/types"
)

var (
	// ErrDecode is wrapped by errors for malformed base64 or hex, or for
	// decoded values of the wrong length.
	ErrDecode = types.ErrDecode
	// ErrInvalidPoint is wrapped by errors for well-formed bytes that are not
	// the canonical encoding of a group element.
	ErrInvalidPoint = types.ErrInvalidPoint
	// ErrUnknownSuite is returned by SuiteByName.
	ErrUnknownSuite = errors.New("unknown suite")

	errInputBytesTooShort = fmt.Errorf("%w: input bytes too short", types.ErrDecode)
)
