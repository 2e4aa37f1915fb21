package main

import "github.com/wg-forge/hextanks-client/internal/cli"

func main() {
	cli.Execute()
}
