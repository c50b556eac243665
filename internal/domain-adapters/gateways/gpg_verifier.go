package gateways

import (
	"fmt"
	"os"

	"github.com/ochairo/resolvereport/internal/external-adapters/gpg"
)

// gpgVerifier wraps the external GPG adapter to implement the SignatureVerifier gateway
type gpgVerifier struct {
	verifier *gpg.Verifier
}

// NewGPGVerifier creates a signature verifier trusting the keys found in keyringPath
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewGPGVerifier(keyringPath string) (*gpgVerifier, error) {
	verifier := gpg.NewVerifier()
	if err := verifier.ImportKeyFromFile(keyringPath); err != nil {
		return nil, fmt.Errorf("failed to import GPG keyring %s: %w", keyringPath, err)
	}
	return &gpgVerifier{verifier: verifier}, nil
}

// VerifyDetached verifies filePath against the detached signature at sigPath
func (g *gpgVerifier) VerifyDetached(filePath, sigPath string) error {
	if _, err := os.Stat(sigPath); os.IsNotExist(err) {
		return fmt.Errorf("signature file not found: %s", sigPath)
	}
	if err := g.verifier.VerifySignatureFromFile(filePath, sigPath); err != nil {
		return fmt.Errorf("GPG signature verification failed: %w", err)
	}
	return nil
}

// GetKeyringSize returns the number of keys loaded
func (g *gpgVerifier) GetKeyringSize() int {
	return g.verifier.GetKeyringSize()
}
