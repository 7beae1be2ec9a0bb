package solana

import (
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// PublicKeyLength is the size of an ed25519 public key in bytes.
const PublicKeyLength = 32

// ErrInvalidAddress is returned for strings that are not base58 public keys.
var ErrInvalidAddress = errors.New("invalid solana address")

// ValidateAddress checks that address decodes from base58 to a 32-byte key.
func ValidateAddress(address string) error {
	if address == "" {
		return fmt.Errorf("%w: empty", ErrInvalidAddress)
	}
	decoded, err := base58.Decode(address)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(decoded) != PublicKeyLength {
		return fmt.Errorf("%w: decoded length %d", ErrInvalidAddress, len(decoded))
	}
	return nil
}
