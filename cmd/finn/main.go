// Package main is the entry point for the finn CLI.
package main

import (
	"github.com/donaldgifford/finn-client/cmd/finn/cmd"
)

func main() {
	cmd.Execute()
}
