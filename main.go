package main

import "github.com/CodMac/go-treesitter-fht-analyzer/cmd"

func main() {
	cmd.Execute()
}
