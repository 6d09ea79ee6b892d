package main

import "github.com/pfrederiksen/tour-watch/internal/cli"

func main() {
	cli.Execute()
}
