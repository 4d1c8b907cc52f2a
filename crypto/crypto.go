// SPDX-License-Identifier: GPL-3.0-only

package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// ComputeSignature returns the hex-encoded HMAC-SHA256 digest of body
// keyed by secret. This is the value senders put in the X-Signature
// header.
func ComputeSignature(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a caller-supplied hex digest against the
// HMAC-SHA256 of the exact raw request bytes. The body must be the
// bytes as received on the wire; re-serialized JSON will not verify
// because whitespace and key order change the digest.
//
// Returns false when the secret is unset, the signature is missing or
// not valid hex, or the digests differ. Comparison is constant time
// via hmac.Equal.
func VerifySignature(body []byte, providedHex, secret string) bool {
	if secret == "" || providedHex == "" {
		return false
	}
	provided, err := hex.DecodeString(providedHex)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hmac.Equal(provided, mac.Sum(nil))
}
