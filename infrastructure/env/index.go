package env

import (
	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func LoadEnv() {
}
