package main

import (
	"github.com/jglaser/xssp/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
