package main

import "github.com/brogergvhs/teamx/cmd"

func main() {
	cmd.Execute()
}
