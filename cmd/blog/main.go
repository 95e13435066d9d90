package main

import (
	"goblog/internal/cli"
)

func main() {
	cli.Execute()
}
