package main

import (
	"github.com/notargets/shockpolar/cmd"
)

func main() {
	cmd.Execute()
}
