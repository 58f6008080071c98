// Package main is the gooze-matcher entry point.
package main

import "github.com/mouse-blink/gooze-matcher/cmd"

func main() {
	cmd.Execute()
}
