package main

import "github.com/vsinha/pos/pkg/interfaces/cli/commands"

func main() {
	commands.Execute()
}
