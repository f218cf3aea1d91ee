package main

import "github.com/alexiusacademia/gomohr/cmd"

func main() {
	cmd.Execute()
}
