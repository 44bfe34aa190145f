package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadENV nạp biến môi trường từ file .env (nếu có)
func LoadENV() error {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// GetEnv trả về giá trị biến môi trường hoặc giá trị mặc định
func GetEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
