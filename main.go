package main

import "github.com/mouse-blink/tick/cmd"

func main() {
	cmd.Execute()
}
