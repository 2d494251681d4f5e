package main

import (
	"github.com/joho/godotenv"
	"github.com/webblaze/projectflow-be/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	// A missing .env is fine in deployments that inject real env vars.
	_ = godotenv.Load()
}
