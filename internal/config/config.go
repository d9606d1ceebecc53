package config

import (
	"os"
	"path/filepath"
)

// Issuer holds the business's own identification and banking details,
// printed on every generated invoice PDF.
type Issuer struct {
	Name    string
	TaxID   string
	Address string
	Phone   string
	Email   string
	Bank    string
	IBAN    string
}

// Config is the immutable application configuration, loaded once at startup.
type Config struct {
	Port        string
	DatabaseDSN string // postgres DSN; when empty the sqlite file at SQLitePath is used
	SQLitePath  string
	DataDir     string
	LogLevel    string
	LogFormat   string // json or console
	Issuer      Issuer
}

// Load reads configuration from the environment with sensible defaults.
// Precedence: explicit env var > .env file (loaded by the caller) > default.
func Load() Config {
	return Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		SQLitePath:  getEnv("SQLITE_PATH", "data.db"),
		DataDir:     getEnv("DATA_DIR", "data"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "console"),
		Issuer: Issuer{
			Name:    os.Getenv("ISSUER_NAME"),
			TaxID:   os.Getenv("ISSUER_TAX_ID"),
			Address: os.Getenv("ISSUER_ADDRESS"),
			Phone:   os.Getenv("ISSUER_PHONE"),
			Email:   os.Getenv("ISSUER_EMAIL"),
			Bank:    os.Getenv("ISSUER_BANK"),
			IBAN:    os.Getenv("ISSUER_IBAN"),
		},
	}
}

// ReceiptsDir is where uploaded expense receipts are stored.
func (c Config) ReceiptsDir() string { return filepath.Join(c.DataDir, "receipts") }

// PDFDir is where generated invoice PDFs are written.
func (c Config) PDFDir() string { return filepath.Join(c.DataDir, "pdf") }

// ExportsDir is where the annual export workbook is written.
func (c Config) ExportsDir() string { return filepath.Join(c.DataDir, "exports") }

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
