package main

import (
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/cli"
)

func main() {
	cli.Execute()
}
