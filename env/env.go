package env

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var dotEnvMap = loadDotEnv()

func loadDotEnv() map[string]string {
	m, err := godotenv.Read(".env")
	if err != nil {
		// no .env file is the normal case for one-shot tools
		return map[string]string{}
	}
	return m
}

func getEnv(key string) string {
	// .env
	value := dotEnvMap[key]

	// os.Getenv wins
	if v := os.Getenv(key); v != "" {
		value = v
	}

	return value
}

func String(key, def string) string {
	value := getEnv(key)
	if value == "" {
		return def
	}
	return value
}

func Int(key string, def int) int {
	value := getEnv(key)
	if value == "" {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return n
}

func Bool(key string, def bool) bool {
	value := getEnv(key)
	if value == "" {
		return def
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return def
	}
	return b
}
