package main

import (
	"message-info/cli"
)

func main() {
	cli.Start()
}
