package main

import "github.com/brogergvhs/questgraph/cmd"

func main() {
	cmd.Execute()
}
