package main

import "github.com/alglobo/exgen/cmd/exgen/cmd"

func main() {
	cmd.Execute()
}
