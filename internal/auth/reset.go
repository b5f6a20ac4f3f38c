package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// NewResetToken returns a random opaque token for the password-reset
// flow. 32 bytes of entropy, hex-encoded.
func NewResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating reset token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// ComputeExpiry returns the expiry instant for a reset token issued at
// now. Pure function of its inputs so expiry logic is testable without
// any shared clock state.
func ComputeExpiry(now time.Time, ttl time.Duration) time.Time {
	return now.Add(ttl)
}
