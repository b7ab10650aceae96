package main

import "catppuccin-api/internal/cli"

func main() {
	cli.Execute()
}
