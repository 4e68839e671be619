package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("STOREOPS_INT", "42")
	t.Setenv("STOREOPS_BAD_INT", "x")
	t.Setenv("STOREOPS_BOOL", "true")
	t.Setenv("STOREOPS_DUR", "90m")
	t.Setenv("STOREOPS_FLOAT", "2.5")

	assert.Equal(t, 42, getEnvInt("STOREOPS_INT", 1))
	assert.Equal(t, 1, getEnvInt("STOREOPS_BAD_INT", 1))
	assert.True(t, getEnvBool("STOREOPS_BOOL", false))
	assert.Equal(t, 90*time.Minute, getEnvDuration("STOREOPS_DUR", time.Hour))
	assert.Equal(t, 2.5, getEnvFloat("STOREOPS_FLOAT", 1))
	assert.Equal(t, "fallback", getEnv("STOREOPS_MISSING", "fallback"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
	assert.Nil(t, splitList(""))
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_EXPIRES", "")
	t.Setenv("SMS_ENABLED", "")
	LoadConfig()

	assert.Equal(t, 7*24*time.Hour, JwtExpires)
	assert.False(t, SMSConfigured())
	assert.Equal(t, "signatures", MinioBucket)
}
