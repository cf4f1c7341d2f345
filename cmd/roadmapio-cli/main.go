package main

import "roadmapio/cmd/roadmapio-cli/cmd"

func main() {
	cmd.Execute()
}
