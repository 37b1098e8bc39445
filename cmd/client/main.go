package main

import "github.com/thihaaungym/vaultboard/cmd/client/cmd"

func main() {
	cmd.Execute()
}
