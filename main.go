// Package main is the entry point for the gobraze CLI.
package main

import (
	"github.com/mdelacruz/gobraze/cmd"
)

func main() {
	cmd.Execute()
}
