package main

import (
	"os"

	"github.com/mailsift/mailsift/tools/mkbackup/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
