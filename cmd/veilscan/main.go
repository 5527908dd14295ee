package main

import "github.com/veilscan/veilscan/cmd/cli"

func main() {
	cli.Execute()
}
