package main

import (
	"os"

	"github.com/Ityord/aistudy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
