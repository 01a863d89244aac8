package main

import "github.com/DrSkyle/graphpad/cmd/graphpad/commands"

func main() {
	commands.Execute()
}
