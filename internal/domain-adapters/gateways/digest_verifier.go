package gateways

import (
	"context"
	"fmt"
	"os"
	"strings"

	// hash implementations behind digest.SHA256 and digest.SHA512
	_ "crypto/sha256"
	_ "crypto/sha512"

	"github.com/opencontainers/go-digest"
)

// digestAlgorithms maps accepted algorithm names to digest algorithms
var digestAlgorithms = map[string]digest.Algorithm{
	"SHA-256":              digest.SHA256,
	"SHA-512":              digest.SHA512,
	digest.SHA256.String(): digest.SHA256,
	digest.SHA512.String(): digest.SHA512,
}

// ParseDigestAlgorithm resolves an algorithm name such as "sha256" or "SHA-512"
func ParseDigestAlgorithm(name string) (digest.Algorithm, error) {
	if algo, ok := digestAlgorithms[name]; ok {
		return algo, nil
	}
	if algo, ok := digestAlgorithms[strings.ToLower(name)]; ok {
		return algo, nil
	}
	return "", fmt.Errorf("unsupported digest algorithm %q", name)
}

// digestVerifier implements content digest calculation for cached files
type digestVerifier struct{}

// NewDigestVerifier creates a new digest verifier
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewDigestVerifier() *digestVerifier {
	return &digestVerifier{}
}

// CalculateDigest computes the digest of a file's content
func (v *digestVerifier) CalculateDigest(ctx context.Context, filePath string, algorithm digest.Algorithm) (digest.Digest, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !algorithm.Available() {
		return "", fmt.Errorf("digest algorithm %q is not available", algorithm)
	}

	//nolint:gosec // G304: File path is computed from the artifact pattern
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	dgst, err := algorithm.FromReader(f)
	if err != nil {
		return "", fmt.Errorf("failed to hash file: %w", err)
	}
	return dgst, nil
}

// VerifyDigest checks a file's content against an expected digest
func (v *digestVerifier) VerifyDigest(ctx context.Context, filePath string, expected digest.Digest) error {
	if err := expected.Validate(); err != nil {
		return fmt.Errorf("invalid expected digest: %w", err)
	}

	actual, err := v.CalculateDigest(ctx, filePath, expected.Algorithm())
	if err != nil {
		return err
	}

	if actual != expected {
		return fmt.Errorf("digest mismatch: expected %s, got %s", expected, actual)
	}

	return nil
}

// ExpectedDigest reads the checksum published at filePath + "." + algorithm, e.g. "lib.jar.sha256".
// The first field of the file is the hex encoded digest.
func (v *digestVerifier) ExpectedDigest(filePath string, algorithm digest.Algorithm) (digest.Digest, bool, error) {
	sumPath := filePath + "." + algorithm.String()

	//nolint:gosec // G304: checksum path is derived from the artifact path
	data, err := os.ReadFile(sumPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read checksum file: %w", err)
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return "", false, fmt.Errorf("empty checksum file: %s", sumPath)
	}

	expected := digest.NewDigestFromEncoded(algorithm, strings.ToLower(fields[0]))
	if err := expected.Validate(); err != nil {
		return "", false, fmt.Errorf("invalid checksum in %s: %w", sumPath, err)
	}
	return expected, true, nil
}
