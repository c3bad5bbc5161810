package utils

import (
	"crypto/rand"
	"fmt"
)

// codeAlphabet excludes nothing: verification codes are base-36 uppercase,
// matching what drivers and passengers exchange verbally at pickup.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// VerificationCodeLength is the length of generated pickup codes.
// Codes must be 4-6 alphanumeric characters.
const VerificationCodeLength = 6

// GenerateVerificationCode draws a pickup verification code from crypto/rand.
// Uniqueness among open bookings is the caller's responsibility.
func GenerateVerificationCode() (string, error) {
	buf := make([]byte, VerificationCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}

// ValidVerificationCode reports whether a supplied code has an acceptable
// shape: 4-6 alphanumeric characters.
func ValidVerificationCode(code string) bool {
	if len(code) < 4 || len(code) > 6 {
		return false
	}
	for _, r := range code {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
