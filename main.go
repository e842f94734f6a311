package main

import (
	"vaultline.io/infrastructure"
	"vaultline.io/infrastructure/env"
)

func init() {
	env.LoadEnv()
}

func main() {
	infrastructure.StartServer()
}
