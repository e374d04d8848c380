package main

import "github.com/restitch/restitch/cmd"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main starts the restitch cli
func main() {
	cmd.Run(version, commit, date)
}
