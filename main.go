package main

import (
	"os"

	"github.com/harkabeeparolus/pylendar/cmd"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
