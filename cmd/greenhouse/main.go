package main

import (
	"github.com/andrescamacho/greenhouse-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
