package main

import "github.com/seamark/divelog/cmd"

func main() {
	cmd.Execute()
}
