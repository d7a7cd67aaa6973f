package main

import "crossprobe/cmd/crossprobe-cli/cmd"

func main() {
	cmd.Execute()
}
