package main

import (
	"os"

	"github.com/ethanolivertroy/bundle-checker/cmd"
)

var exitFunc = os.Exit

func main() {
	exitFunc(cmd.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
