package config // package config loads application configuration from environment variables

import "time"

// devSessionSecret signs session cookies outside production when
// SESSION_SECRET is not set.
const devSessionSecret = "party-bliss-dev-secret"

// Config holds the runtime settings of the web server.  Each field
// corresponds to an environment variable; every one has a usable default
// except SESSION_SECRET in production.
type Config struct {
	Env            string        // application environment (dev, test, prod)
	Port           string        // HTTP port to listen on
	PublicDir      string        // directory served under /assets
	SessionSecret  string        // HMAC key for session cookies
	SessionTTL     time.Duration // lifetime of a session cookie
	SessionIdleTTL time.Duration // idle time after which a form instance is dropped
	SweepInterval  time.Duration // how often idle form instances are swept
	CatalogURL     string        // product feed for the shop section
	CatalogTimeout time.Duration // HTTP client timeout for the product feed
}

// Load reads the server configuration.  In production a missing
// SESSION_SECRET stops the process.
func Load() Config {
	env := envStr("APP_ENV", "dev")
	secret := envStr("SESSION_SECRET", "")
	if env == "prod" {
		secret = must("SESSION_SECRET")
	} else if secret == "" {
		secret = devSessionSecret
	}
	return Config{
		Env:            env,
		Port:           envStr("APP_PORT", "8080"),
		PublicDir:      envStr("PUBLIC_DIR", "public"),
		SessionSecret:  secret,
		SessionTTL:     envDur("SESSION_TTL", 24*time.Hour),
		SessionIdleTTL: envDur("SESSION_IDLE_TTL", 30*time.Minute),
		SweepInterval:  envDur("SESSION_SWEEP_INTERVAL", time.Minute),
		CatalogURL:     envStr("CATALOG_URL", "https://fakestoreapi.com/products?limit=8&category=electronics"),
		CatalogTimeout: envDur("CATALOG_TIMEOUT", 10*time.Second),
	}
}

// IsProd reports whether the server runs in production.
func (c Config) IsProd() bool { return c.Env == "prod" }
