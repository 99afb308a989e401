package main

import (
	"os"

	"github.com/PabloGalante/recovery-agent/cmd/recovery-api/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
