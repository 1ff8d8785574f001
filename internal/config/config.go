package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Host             string
	Port             int
	AllowOrigins     []string
	LogLevel         string
	LogFile          string
	MaxUploadMB      int
	WorkbookPath     string
	SelectTimeoutSec int
}

func Load() Config {
	port, _ := strconv.Atoi(getenv("PORT", "8083"))
	mb, _ := strconv.Atoi(getenv("MAX_UPLOAD_MB", "64"))
	sel, _ := strconv.Atoi(getenv("SELECT_TIMEOUT_SEC", "30"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	return Config{
		Host:             getenv("HOST", "127.0.0.1"),
		Port:             port,
		AllowOrigins:     origins,
		LogLevel:         getenv("LOG_LEVEL", "info"),
		LogFile:          getenv("LOG_FILE", "logs/statement-import.log"),
		MaxUploadMB:      mb,
		WorkbookPath:     getenv("WORKBOOK_PATH", "data/statements.xlsx"),
		SelectTimeoutSec: sel,
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func (c Config) SelectTimeout() time.Duration {
	return time.Duration(c.SelectTimeoutSec) * time.Second
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
