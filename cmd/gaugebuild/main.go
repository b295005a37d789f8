package main

import (
	gbcmd "github.com/sorour488/gaugebuild/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	gbcmd.SetVersionInfo(version, commit)
	gbcmd.Execute()
}
