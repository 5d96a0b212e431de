package pkg

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const addressHexLength = 40 // 20 bytes

// ValidateStakerAddress checks that an address is a 0x-prefixed, 20-byte,
// lowercase hex account identifier.
func ValidateStakerAddress(address string) error {
	if !strings.HasPrefix(address, "0x") {
		return fmt.Errorf("address must be 0x-prefixed")
	}

	body := address[2:]
	if len(body) != addressHexLength {
		return fmt.Errorf("address must be %d hex characters, got %d", addressHexLength, len(body))
	}
	if body != strings.ToLower(body) {
		return fmt.Errorf("address must be lowercase")
	}
	if _, err := hex.DecodeString(body); err != nil {
		return fmt.Errorf("address is not valid hex: %w", err)
	}

	return nil
}
