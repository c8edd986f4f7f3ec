package main

import (
	"os"

	"artbot/cmd/artbotctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
