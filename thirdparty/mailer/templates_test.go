package mailer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOTPMessage(t *testing.T) {
	msg := OTPMessage("BHRC", "a@example.org", "Asha", "042917", "verify your email address", 10*time.Minute)

	assert.Equal(t, "a@example.org", msg.To)
	assert.True(t, msg.Valid())
	assert.Contains(t, msg.Body, "042917")
	assert.Contains(t, msg.Body, "10 minutes")
}

func TestComplaintFiledMessage_EscapesInput(t *testing.T) {
	msg := ComplaintFiledMessage("BHRC", "a@example.org", "<script>x</script>", "BHRC2024030001")

	assert.Contains(t, msg.Subject, "BHRC2024030001")
	assert.False(t, strings.Contains(msg.Body, "<script>"))
	assert.Contains(t, msg.Body, "&lt;script&gt;")
}

func TestMessage_Valid(t *testing.T) {
	assert.False(t, Message{Subject: "x"}.Valid())
	assert.False(t, Message{To: "a@example.org"}.Valid())
	assert.True(t, Message{To: "a@example.org", Subject: "x"}.Valid())
}
