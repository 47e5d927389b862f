// Package main is the entry point for the fenum CLI.
package main

import "fenum.dev/pkg/fenum/cmd"

func main() {
	cmd.Execute()
}
