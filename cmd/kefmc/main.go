package main

import "github.com/kefmc/tournament-engine/internal/cli"

func main() {
	cli.Execute()
}
