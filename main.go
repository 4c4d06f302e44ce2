package main

import (
	"github.com/pagemint/pagemint/cmd"
)

func main() {
	cmd.Execute()
}
