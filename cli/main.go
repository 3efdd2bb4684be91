package main

import (
	"os"

	"github.com/cmoscosoz/mock-supabase-go/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
