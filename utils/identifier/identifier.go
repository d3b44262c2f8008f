// Package identifier produces human-readable reference numbers and security codes.
package identifier

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"time"
)

const (
	DefaultOTPLength = 6
	// MinOTPLength and MaxOTPLength match the otp request validation.
	MinOTPLength     = 4
	MaxOTPLength     = 10
	DefaultTokenSize = 32
)

// Reader is the entropy source; tests may swap it.
var Reader io.Reader = rand.Reader

// ComplaintNumber formats BHRC{YYYY}{MM}{seq:04}.
func ComplaintNumber(t time.Time, seq int64) string {
	return fmt.Sprintf("BHRC%04d%02d%04d", t.Year(), int(t.Month()), seq)
}

// ComplaintBucket is the counter key a complaint filed at t draws its sequence from.
func ComplaintBucket(t time.Time) string {
	return fmt.Sprintf("complaint:%04d%02d", t.Year(), int(t.Month()))
}

// CertificateNumber formats BHRC-{YYYY}-{4 random digits}.
func CertificateNumber(t time.Time) (string, error) {
	digits, err := Digits(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("BHRC-%04d-%s", t.Year(), digits), nil
}

// DonationReference formats DON{YYYYMMDD}{4 random digits}.
func DonationReference(t time.Time) (string, error) {
	digits, err := Digits(4)
	if err != nil {
		return "", err
	}
	return "DON" + t.Format("20060102") + digits, nil
}

// ReceiptNumber derives the receipt number of a completed donation.
func ReceiptNumber(reference string) string {
	return "RCPT-" + reference
}

// OTP returns a zero-padded decimal code of the given length, held to
// MinOTPLength..MaxOTPLength.
func OTP(length int) (string, error) {
	switch {
	case length <= 0:
		length = DefaultOTPLength
	case length < MinOTPLength:
		length = MinOTPLength
	case length > MaxOTPLength:
		length = MaxOTPLength
	}
	return Digits(length)
}

// Token returns size random bytes hex-encoded.
func Token(size int) (string, error) {
	if size <= 0 {
		size = DefaultTokenSize
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(Reader, buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Digits returns n uniformly random decimal digits (n <= 18).
func Digits(n int) (string, error) {
	if n <= 0 || n > 18 {
		return "", fmt.Errorf("digits: length %d out of range", n)
	}
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	v, err := rand.Int(Reader, max)
	if err != nil {
		return "", fmt.Errorf("draw random number: %w", err)
	}
	return fmt.Sprintf("%0*d", n, v.Int64()), nil
}
