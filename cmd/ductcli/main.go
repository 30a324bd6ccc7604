package main

import (
	"Plenum/internal/cli"
)

func main() {
	cli.Execute()
}
