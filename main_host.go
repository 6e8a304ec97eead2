//go:build !tinygo

package main

import "lockbox/internal/cli"

func main() {
	cli.Execute()
}
