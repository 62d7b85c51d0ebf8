package admin

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// newOTP generates a six-digit numeric one-time code. No OTP-generation
// library appears anywhere in the retrieved example corpus, so this is
// a justified stdlib-only implementation — see DESIGN.md.
func newOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
