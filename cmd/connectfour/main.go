package main

import "github.com/mcoot/connectfour-go/internal/cli"

func main() {
	cli.Execute()
}
