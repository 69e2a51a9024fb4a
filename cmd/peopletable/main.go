package main

import "github.com/gabryel85/peopletable/internal/cli"

func main() {
	cli.Execute()
}
