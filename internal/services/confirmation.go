package services

import (
	"crypto/rand"
	"fmt"
	"time"

	"smartbiz-confirm/internal/domain"
)

const confirmationCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const confirmationIDLength = 8

// fallbackConfirmation produces a local confirmation when the remote
// generation service is unavailable. It cannot fail.
func fallbackConfirmation(customerName string) *domain.OrderResult {
	id := "ORD-" + randomAlphanumeric(confirmationIDLength)
	return &domain.OrderResult{
		ConfirmationID: id,
		Message:        fmt.Sprintf("Thank you, %s! Your order %s has been confirmed.", customerName, id),
	}
}

func randomAlphanumeric(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand practically never fails; degrade to clock bytes
		// rather than propagate an error out of the fallback path.
		now := time.Now().UnixNano()
		for i := range b {
			b[i] = byte(now >> (uint(i) * 8))
		}
	}
	for i := range b {
		b[i] = confirmationCharset[int(b[i])%len(confirmationCharset)]
	}
	return string(b)
}
