package identifier_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/muhammadheryan/bhrc-portal/utils/identifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplaintNumber(t *testing.T) {
	march := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "BHRC2024030001", identifier.ComplaintNumber(march, 1))
	assert.Equal(t, "BHRC2024030042", identifier.ComplaintNumber(march, 42))
	assert.Equal(t, "BHRC2024129999", identifier.ComplaintNumber(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), 9999))
	assert.Equal(t, "complaint:202403", identifier.ComplaintBucket(march))
}

func TestCertificateNumber(t *testing.T) {
	n, err := identifier.CertificateNumber(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^BHRC-2025-\d{4}$`), n)
}

func TestDonationReference(t *testing.T) {
	n, err := identifier.DonationReference(time.Date(2024, time.February, 9, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^DON20240209\d{4}$`), n)
	assert.Equal(t, "RCPT-"+n, identifier.ReceiptNumber(n))
}

func TestOTP(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := identifier.OTP(6)
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), code)
	}

	code, err := identifier.OTP(0)
	require.NoError(t, err)
	assert.Len(t, code, identifier.DefaultOTPLength)

	for length, want := range map[int]int{2: identifier.MinOTPLength, 8: 8, 40: identifier.MaxOTPLength} {
		code, err := identifier.OTP(length)
		require.NoError(t, err)
		assert.Len(t, code, want)
	}
}

func TestToken(t *testing.T) {
	a, err := identifier.Token(32)
	require.NoError(t, err)
	b, err := identifier.Token(32)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), a)
	assert.NotEqual(t, a, b)
}
