// Package gpg provides OpenPGP detached signature verification.
package gpg

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
)

const armorPrefix = "-----BEGIN PGP"

// Verifier implements detached signature verification using ProtonMail's go-crypto
// A maintained, modern fork of golang.org/x/crypto/openpgp
// This is in external-adapters to isolate the external dependency
type Verifier struct {
	keyring openpgp.EntityList
}

// NewVerifier creates a new verifier with an empty keyring
func NewVerifier() *Verifier {
	return &Verifier{
		keyring: make(openpgp.EntityList, 0),
	}
}

// ImportKeyFromFile imports armored or binary public keys from a file
func (v *Verifier) ImportKeyFromFile(keyPath string) error {
	//nolint:gosec // G304: keyPath is the configured keyring
	f, err := os.Open(keyPath)
	if err != nil {
		return fmt.Errorf("failed to open key file: %w", err)
	}
	//nolint:errcheck // Defer close
	defer f.Close()

	return v.ImportKeys(f)
}

// ImportKeys imports armored or binary public keys from r
func (v *Verifier) ImportKeys(r io.Reader) error {
	br := bufio.NewReader(r)
	armored, err := isArmored(br)
	if err != nil {
		return fmt.Errorf("failed to read key: %w", err)
	}

	var entities openpgp.EntityList
	if armored {
		entities, err = openpgp.ReadArmoredKeyRing(br)
	} else {
		entities, err = openpgp.ReadKeyRing(br)
	}
	if err != nil {
		return fmt.Errorf("failed to read key: %w", err)
	}

	if len(entities) == 0 {
		return errors.New("no keys found in file")
	}

	v.keyring = append(v.keyring, entities...)
	return nil
}

// VerifySignatureFromFile verifies a detached signature from a local file
func (v *Verifier) VerifySignatureFromFile(filePath, sigPath string) error {
	if len(v.keyring) == 0 {
		return errors.New("no keys imported, call ImportKeyFromFile first")
	}

	//nolint:gosec // G304: sigPath is derived from the report path
	sigFile, err := os.Open(sigPath)
	if err != nil {
		return fmt.Errorf("failed to open signature file: %w", err)
	}
	//nolint:errcheck // Defer close
	defer sigFile.Close()

	//nolint:gosec // G304: filePath is computed by the report locator
	dataFile, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open data file: %w", err)
	}
	//nolint:errcheck // Defer close
	defer dataFile.Close()

	sig := bufio.NewReader(sigFile)
	armored, err := isArmored(sig)
	if err != nil {
		return fmt.Errorf("failed to read signature: %w", err)
	}

	var verifyErr error
	if armored {
		_, verifyErr = openpgp.CheckArmoredDetachedSignature(v.keyring, dataFile, sig, nil)
	} else {
		_, verifyErr = openpgp.CheckDetachedSignature(v.keyring, dataFile, sig, nil)
	}

	if verifyErr != nil {
		return fmt.Errorf("signature verification failed: %w", verifyErr)
	}

	return nil
}

// GetKeyringSize returns the number of keys in the keyring
func (v *Verifier) GetKeyringSize() int {
	return len(v.keyring)
}

func isArmored(r *bufio.Reader) (bool, error) {
	peek, err := r.Peek(len(armorPrefix))
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return false, err
	}
	return string(peek) == armorPrefix, nil
}
