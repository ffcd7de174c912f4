package main

import "github.com/shade-palette/shade/cmd"

func main() {
	cmd.Execute()
}
