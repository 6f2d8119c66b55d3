package main

import "truncate-engine/cmd/truncate/cmd"

func main() {
	cmd.Execute()
}
