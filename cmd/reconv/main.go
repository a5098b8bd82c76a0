package main

import "github.com/recokit/reconv/internal/cli"

func main() {
	cli.Execute()
}
