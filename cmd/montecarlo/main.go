package main

import (
	"os"

	"github.com/wonny/montecarlo/cmd/montecarlo/commands"
)

// main is the entry point for the montecarlo CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/montecarlo [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
