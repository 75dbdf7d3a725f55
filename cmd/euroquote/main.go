package main

import (
	"os"

	"github.com/wonny/euroquote/cmd/euroquote/commands"
)

// main is the entry point for the euroquote CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/euroquote [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
