package main

import "github.com/spendwise/cli/internal/cmd"

func main() {
	cmd.Execute()
}
