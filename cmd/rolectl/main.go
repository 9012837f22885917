// Command rolectl inspects the permission catalog, roles and custom roles from the terminal.
package main

import (
	"os"

	"role-explorer/pkg/version"
)

func main() {
	cmd := NewRootCmd()
	cmd.Version = version.Short()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
