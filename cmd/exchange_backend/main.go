package main

import (
	"os"

	"github.com/SscSPs/currency_exchange/cmd/exchange_backend/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
