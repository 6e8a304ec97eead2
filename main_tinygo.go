//go:build tinygo

package main

import (
	"lockbox/app"
	"lockbox/hal"
)

func main() {
	app.Run(hal.New())
}
