package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvParsesAdminIDs(t *testing.T) {
	t.Setenv("ADMIN_IDS", "100, 200,bad,300")

	cfg := FromEnv()

	assert.Equal(t, []int64{100, 200, 300}, cfg.AdminIDs)
	assert.True(t, cfg.IsAdmin(200))
	assert.False(t, cfg.IsAdmin(999))
}

func TestGatewayConfigured(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.GatewayConfigured())

	cfg.GatewayKeyID = "rzp_test_key"
	assert.False(t, cfg.GatewayConfigured(), "needs the secret too")

	cfg.GatewayKeySecret = "secret"
	assert.True(t, cfg.GatewayConfigured())
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("PAYMENT_UPI_ID", "")
	t.Setenv("REDIS_HOST", "")

	cfg := FromEnv()

	assert.Equal(t, "priyansh563@ybl", cfg.UPIID)
	assert.Equal(t, "localhost", cfg.RedisHost)
}
