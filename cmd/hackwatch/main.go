package main

import (
	"hackwatch/internal/cli"
)

func main() {
	cli.Execute()
}
