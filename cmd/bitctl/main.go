package main

import "github.com/gregLibert/bit-manip/cmd/bitctl/cmd"

func main() {
	cmd.Execute()
}
