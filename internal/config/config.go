package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	ServerPort string
	JWTSecret  string

	// Credencial estática do operador (dono da barbearia).
	AdminUser         string
	AdminPasswordHash string

	Timezone string

	// Persistência chave-valor: memory | file | redis
	KVBackend string
	DataDir   string
	RedisAddr string
	RedisDB   int

	// Janela de funcionamento
	OpenHour        int
	CloseHour       int
	IntervalMinutes int
	ClosedWeekday   int // 0 = domingo
	BookingWindow   int

	CatalogPath    string
	PromotionsPath string

	// Expressão cron do worker de lembretes (com segundos).
	ReminderSpec string
}

func Load() *Config {
	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),

		AdminUser:         getEnv("ADMIN_USER", "admin"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		Timezone: getEnv("TIMEZONE", "America/Sao_Paulo"),

		KVBackend: getEnv("KV_BACKEND", "file"),
		DataDir:   getEnv("DATA_DIR", "./data"),
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:   getEnvInt("REDIS_DB", 0),

		OpenHour:        getEnvInt("OPEN_HOUR", 9),
		CloseHour:       getEnvInt("CLOSE_HOUR", 19),
		IntervalMinutes: getEnvInt("INTERVAL_MINUTES", 45),
		ClosedWeekday:   getEnvInt("CLOSED_WEEKDAY", 0),
		BookingWindow:   getEnvInt("BOOKING_WINDOW_DAYS", 7),

		CatalogPath:    getEnv("CATALOG_PATH", ""),
		PromotionsPath: getEnv("PROMOTIONS_PATH", ""),

		ReminderSpec: getEnv("REMINDER_SPEC", "0 */15 * * * *"),
	}

	if cfg.AdminPasswordHash == "" {
		// Sem hash configurado, deriva um da senha em texto (padrão de dev).
		plain := getEnv("ADMIN_PASSWORD", "changeme")
		hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash admin password: %v", err)
		}
		cfg.AdminPasswordHash = string(hashed)
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
