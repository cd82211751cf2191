package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultReadBufferSize  = 1024
	minReadBufferSize      = 64
	defaultDrainBufferSize = 4096
	minDrainBufferSize     = 512
	maxBufferSize          = 1048576
)

type config struct {
	host string
	port string

	readBufferSize  int
	drainBufferSize int
}

func parse() (*config, error) {
	host := getenv("HOST", "127.0.0.1")

	port, err := parsePort()
	if err != nil {
		return nil, err
	}

	return &config{
		host:            host,
		port:            port,
		readBufferSize:  parseBufferSize("READ_BUFFER_SIZE", defaultReadBufferSize, minReadBufferSize),
		drainBufferSize: parseBufferSize("DRAIN_BUFFER_SIZE", defaultDrainBufferSize, minDrainBufferSize),
	}, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

func parsePort() (string, error) {
	raw := getenv("PORT", "42069")
	if _, err := strconv.ParseUint(raw, 10, 16); err != nil {
		return "", fmt.Errorf("invalid PORT value %q: %w", raw, err)
	}
	return raw, nil
}

func parseBufferSize(key string, def, lower int) int {
	raw := getenv(key, strconv.Itoa(def))
	size, err := strconv.Atoi(raw)
	if err != nil || size < lower || size > maxBufferSize {
		log.Printf("Invalid %s, falling back to %d", key, def)
		return def
	}
	return size
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
