package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/walletkeep-dev/walletkeep/internal/commands"
)

func main() {
	// A .env file may set WALLETKEEP_FILE; absence is fine.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
