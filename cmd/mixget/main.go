package main

import (
	"os"

	"mixget/cmd/mixget/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
