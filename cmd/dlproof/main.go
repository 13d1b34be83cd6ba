// Command dlproof creates and verifies Schnorr proofs of knowledge of a
// discrete logarithm.
//
//	dlproof [flags] prove
//	dlproof [flags] verify
//
// verify exits 0 if the proof is accepted, 1 if it is rejected and 2 if the
// input is malformed.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/athanorlabs/go-dlproof"
	"github.com/athanorlabs/go-dlproof/ristretto"
)

const (
	exitAccepted  = 0
	exitRejected  = 1
	exitMalformed = 2
)

const redacted = "[redacted]"

type options struct {
	secret  string
	message string
	suite   string
	backend string
	json    bool
	in      string
}

func main() {
	var opts options
	flag.StringVar(&opts.secret, "secret", "", "secret scalar (hex); random if empty")
	flag.StringVar(&opts.message, "message", "Hello from seller network", "message the proof is bound to")
	flag.StringVar(&opts.suite, "suite", dlproof.DefaultSuiteName, "proof suite")
	flag.StringVar(&opts.backend, "backend", "gtank", "ristretto255 backend (gtank or go-ristretto)")
	flag.BoolVar(&opts.json, "json", false, "print the proof as a JSON proof message")
	flag.StringVar(&opts.in, "in", "-", "proof message to verify (file, or - for stdin)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] prove|verify\n\nsuites:\n", os.Args[0])
		for _, name := range dlproof.SuiteNames() {
			fmt.Fprintf(flag.CommandLine.Output(), "  %s\n", name)
		}
		fmt.Fprintln(flag.CommandLine.Output(), "\nflags:")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	mode := "prove"
	if flag.NArg() > 0 {
		mode = flag.Arg(0)
	}

	suite, err := newSuite(opts.suite, opts.backend)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(exitMalformed)
	}
	logger = logger.With("suite", suite.Name(), "backend", opts.backend)

	switch mode {
	case "prove":
		os.Exit(prove(logger, suite, opts, os.Stdout))
	case "verify":
		os.Exit(verify(logger, suite, opts.in, os.Stdin, os.Stdout))
	default:
		logger.Error("unknown mode", "mode", mode)
		flag.Usage()
		os.Exit(exitMalformed)
	}
}

func newSuite(name, backend string) (*dlproof.Suite, error) {
	suite, err := dlproof.SuiteByName(name)
	if err != nil {
		return nil, err
	}

	switch backend {
	case "gtank":
		return suite, nil
	case "go-ristretto":
		if suite.Curve().Name() != "ristretto255" {
			return nil, fmt.Errorf("backend %q requires a ristretto255 suite, got %q", backend, name)
		}
		return dlproof.NewSuite(ristretto.NewCurve(), suite.Challenger()), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}

func prove(logger *slog.Logger, suite *dlproof.Suite, opts options, out io.Writer) int {
	var (
		secret dlproof.Scalar
		err    error
	)
	if opts.secret == "" {
		secret = suite.RandomScalar()
		logger.Info("generated random secret")
	} else {
		secret, err = suite.ScalarFromHex(opts.secret)
		if err != nil {
			logger.Error("failed to decode secret", "secret", redacted, "err", err)
			return exitMalformed
		}
	}

	m := suite.NewProofMessage(secret, opts.message)
	logger.Info("created proof", "pub_point", m.PubPoint, "message_len", len(m.Message))

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(m); err != nil {
			logger.Error("failed to write proof message", "err", err)
			return exitMalformed
		}
	} else {
		fmt.Fprintf(out, "Secret:     %s\n", suite.ScalarToHex(secret))
		fmt.Fprintf(out, "Public key: %s\n", m.PubPoint)
		fmt.Fprintf(out, "Commitment: %s\n", m.Commitment)
		fmt.Fprintf(out, "Response:   %s\n", m.Response)
		fmt.Fprintf(out, "Message:    %s\n", m.Message)
	}

	code := check(logger, suite, m)
	if !opts.json {
		fmt.Fprintln(out, verdict(code))
	}
	return code
}

func verify(logger *slog.Logger, suite *dlproof.Suite, path string, stdin io.Reader, out io.Writer) int {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		logger.Error("failed to read proof message", "in", path, "err", err)
		return exitMalformed
	}

	m, err := dlproof.ParseProofMessage(data)
	if err != nil {
		logger.Error("malformed proof message", "in", path, "err", err)
		return exitMalformed
	}

	code := check(logger, suite, m)
	fmt.Fprintln(out, verdict(code))
	return code
}

func check(logger *slog.Logger, suite *dlproof.Suite, m *dlproof.ProofMessage) int {
	ok, err := suite.VerifyMessage(m)
	switch {
	case errors.Is(err, dlproof.ErrDecode), errors.Is(err, dlproof.ErrInvalidPoint):
		logger.Warn("malformed proof", "err", err)
		return exitMalformed
	case err != nil:
		logger.Error("verification failed", "err", err)
		return exitMalformed
	case !ok:
		logger.Warn("proof rejected", "pub_point", m.PubPoint)
		return exitRejected
	}

	logger.Info("proof accepted", "pub_point", m.PubPoint)
	return exitAccepted
}

func verdict(code int) string {
	switch code {
	case exitAccepted:
		return "ACCEPTED"
	case exitRejected:
		return "REJECTED"
	default:
		return "MALFORMED"
	}
}
