package main

import (
	"os"

	"github.com/byteserve/byteserve/cmd"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	os.Exit(main1())
}

func main1() int {
	return cmd.Execute(version, commit, date)
}
