package main

import "github.com/pfrederiksen/pto-notifier/internal/cli"

func main() {
	cli.Execute()
}
