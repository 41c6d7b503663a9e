package main

import "github.com/JJshome/VirtualSpaceTokenization/internal/cli"

func main() {
	cli.Execute()
}
