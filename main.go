package main

import "github.com/rbarraud/lisper/cmd"

func main() {
	cmd.Execute()
}
