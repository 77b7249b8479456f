package main

import (
	"os"

	"github.com/scan-io-git/gctl/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
