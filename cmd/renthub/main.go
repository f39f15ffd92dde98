package main

import (
	"fmt"
	"os"

	"renthub-backend/internal/cli"
)

func main() {
	if err := cli.NewRootCmd(cli.LoadEnv).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
