package main

import "wtthemes/internal/cli"

func main() {
	cli.Execute()
}
