//go:build tinygo

package main

import (
	"wirebox/app"
	"wirebox/hal"
)

func main() {
	app.Run(hal.New())
}
