package config_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/bhrc-portal/cmd/config"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_USER", "bhrc")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "portal")
	t.Setenv("OTP_RESEND_COOLDOWN", "not-a-duration")
	t.Setenv("DB_PORT", "3307")

	cfg := config.Load()
	assert.Equal(t, 6, cfg.OTP.Length)
	assert.Equal(t, 10*time.Minute, cfg.OTP.EmailTTL)
	assert.Equal(t, 5*time.Minute, cfg.OTP.LoginTTL)
	assert.Equal(t, 3, cfg.OTP.MaxAttempts)
	assert.Equal(t, 60*time.Second, cfg.OTP.ResendCooldown)
	assert.Equal(t, 24*time.Hour, cfg.Auth.JWTExpiration)
	assert.Equal(t, int64(5<<20), cfg.Upload.MaxSize)
	assert.Equal(t, "bhrc:secret@tcp(127.0.0.1:3307)/portal?parseTime=true&loc=Local&charset=utf8mb4&clientFoundRows=true", cfg.GetDSN())
}
