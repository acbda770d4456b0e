package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Telegram struct {
	BotToken string
	ChatID   string
	APIURL   string
	Timeout  time.Duration
}

type Shopify struct {
	WebhookSecret string
}

type Phone struct {
	DefaultRegion      string
	DefaultCountryCode string
}

type Dedup struct {
	HighWater     int
	SweepInterval time.Duration
}

type Notify struct {
	Retries   int
	RetryBase time.Duration
}

type Store struct {
	Name         string
	URL          string
	InstagramURL string
}

type Config struct {
	HTTPAddr string
	Env      string

	Shopify  Shopify
	Telegram Telegram
	Phone    Phone
	Dedup    Dedup
	Notify   Notify
	Store    Store
}

// Load fatals on error for simplicity in main(); missing required envs must
// prevent startup.
func Load() Config {
	cfg, err := load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	return cfg
}

func load() (Config, error) {
	_ = godotenv.Load("env/.env")

	cfg := Config{
		HTTPAddr: envDefault("HTTP_ADDR", ":8080"),
		Env:      envDefault("APP_ENV", "development"),

		Shopify: Shopify{
			WebhookSecret: strings.TrimSpace(os.Getenv("SHOPIFY_WEBHOOK_SECRET")),
		},

		Telegram: Telegram{
			BotToken: strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN")),
			ChatID:   strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")),
			APIURL:   envDefault("TELEGRAM_API_URL", "https://api.telegram.org"),
			Timeout:  envDurationMS("TELEGRAM_TIMEOUT", 30*time.Second),
		},

		Phone: Phone{
			DefaultRegion:      envDefault("DEFAULT_REGION", "IN"),
			DefaultCountryCode: envDefault("DEFAULT_COUNTRY_CODE", "91"),
		},

		Dedup: Dedup{
			HighWater:     envInt("DEDUP_CAP", 1000),
			SweepInterval: envDurationMS("DEDUP_SWEEP_INTERVAL", time.Hour),
		},

		Notify: Notify{
			Retries:   envInt("NOTIFY_RETRIES", 1),
			RetryBase: envDurationMS("NOTIFY_RETRY_BASE", time.Second),
		},

		Store: Store{
			Name:         envDefault("STORE_NAME", "Sorah Perfume"),
			URL:          envDefault("STORE_URL", "https://www.sorahperfume.in"),
			InstagramURL: envDefault("STORE_INSTAGRAM", "https://instagram.com/sorahperfume.in"),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var missing []string
	req := map[string]string{
		"SHOPIFY_WEBHOOK_SECRET": c.Shopify.WebhookSecret,
		"TELEGRAM_BOT_TOKEN":     c.Telegram.BotToken,
		"TELEGRAM_CHAT_ID":       c.Telegram.ChatID,
	}
	for k, v := range req {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return &missingEnvError{Keys: missing}
	}

	if c.Dedup.HighWater <= 0 {
		log.Printf("DEDUP_CAP is %d, adjusting to 1", c.Dedup.HighWater)
	}
	if c.Notify.Retries < 0 {
		log.Printf("NOTIFY_RETRIES is %d, adjusting to 0", c.Notify.Retries)
	}
	if c.Notify.RetryBase <= 0 {
		log.Printf("NOTIFY_RETRY_BASE is %v, adjusting to 1s", c.Notify.RetryBase)
	}
	return nil
}

type missingEnvError struct{ Keys []string }

func (e *missingEnvError) Error() string {
	return "missing required envs: " + strings.Join(e.Keys, ", ")
}

func envDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return n
}

// envDurationMS supports either plain integer milliseconds ("1500") or
// Go duration strings ("1.5s", "250ms", "2m").
func envDurationMS(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	if strings.IndexFunc(v, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
			return def
		}
		return d
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
		return def
	}
	return time.Duration(ms) * time.Millisecond
}
