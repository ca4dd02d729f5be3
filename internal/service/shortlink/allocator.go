package shortlink

import (
	"crypto/rand"
	"fmt"

	"github.com/snaplinkhq/snaplink-backend/internal/domain"
)

// codeAlphabet has exactly 64 symbols so a random byte masked to 6 bits
// maps onto it without modulo bias.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// generateCode returns a fresh random code of domain.CodeLength symbols.
func generateCode() (string, error) {
	buf := make([]byte, domain.CodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[b&63]
	}
	return string(buf), nil
}
