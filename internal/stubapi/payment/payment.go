// Package payment mimics the hosted payment provider's order issuance and
// signature scheme so the confirm flow can be verified end to end without a
// real gateway account.
package payment

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

func randomID(prefix string) string {
	buf := make([]byte, 9)
	_, _ = rand.Read(buf)
	return prefix + hex.EncodeToString(buf)
}

func NewOrderID() string {
	return randomID("order_")
}

func NewPaymentID() string {
	return randomID("pay_")
}

// Signer reproduces the provider's checkout signature:
// HMAC-SHA256("<order_id>|<payment_id>") under the key secret.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

func (s *Signer) Sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *Signer) Verify(orderID, paymentID, signature string) bool {
	expected := s.Sign(orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}
