package main

import (
	"cyberlearn/cmd"
)

func main() {
	cmd.Run()
}
