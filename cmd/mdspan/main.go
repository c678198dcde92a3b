// Package main provides the mdspan CLI, a small driver that binds views to a
// generated buffer and prints them.
package main

import (
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
