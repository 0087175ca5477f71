package main

import (
	"os"

	"github.com/adcontextprotocol/adcp-go/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
