package main

import "github.com/navalha-dev/navalha/internal/cli"

func main() {
	cli.Execute()
}
