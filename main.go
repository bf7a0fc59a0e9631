package main

import (
	"os"

	"github.com/oriolmontal/lingodrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
