package main

import "brewctl/internal/cli"

func main() {
	cli.Execute()
}
