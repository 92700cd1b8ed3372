package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config is assembled from the environment once at startup and handed to
// the components that need it. Nothing reads admin IDs or payment settings
// globally.
type Config struct {
	BotToken string
	AdminIDs []int64

	UPIID       string
	PaymentNote string

	// A gateway key pair switches the buy flow from the manual UPI text
	// to per-plan buttons.
	GatewayKeyID     string
	GatewayKeySecret string

	PostgresDSN string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	CatalogCacheTTLMinutes int
}

func FromEnv() *Config {
	c := &Config{
		BotToken:         strings.TrimSpace(os.Getenv("BOT_TOKEN")),
		UPIID:            envOr("PAYMENT_UPI_ID", "priyansh563@ybl"),
		PaymentNote:      envOr("PAYMENT_NOTE", "StudyBot Premium"),
		GatewayKeyID:     strings.TrimSpace(os.Getenv("RAZORPAY_KEY_ID")),
		GatewayKeySecret: strings.TrimSpace(os.Getenv("RAZORPAY_KEY_SECRET")),
		PostgresDSN:      strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		RedisHost:        envOr("REDIS_HOST", "localhost"),
		RedisPort:        envOr("REDIS_PORT", "6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
	}

	for _, part := range strings.Split(os.Getenv("ADMIN_IDS"), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			log.Printf("Ignoring invalid ADMIN_IDS entry %q", part)
			continue
		}
		c.AdminIDs = append(c.AdminIDs, id)
	}

	if v := strings.TrimSpace(os.Getenv("REDIS_DB")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("Invalid REDIS_DB value, using default: 0")
		} else {
			c.RedisDB = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("CATALOG_CACHE_TTL_MIN")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.CatalogCacheTTLMinutes = n
		}
	}

	return c
}

func (c *Config) IsAdmin(tgID int64) bool {
	for _, id := range c.AdminIDs {
		if id == tgID {
			return true
		}
	}
	return false
}

func (c *Config) GatewayConfigured() bool {
	return c.GatewayKeyID != "" && c.GatewayKeySecret != ""
}

func envOr(name, def string) string {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	return v
}
