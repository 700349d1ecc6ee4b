package main

import (
	"fmt"
	"os"

	"github.com/jenkinslint/jenkinslint/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "jenkinslint:", err)
		os.Exit(1)
	}
}
