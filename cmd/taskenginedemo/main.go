// Command taskenginedemo drives the task engine from the command line: a
// process entry point for exercising the library, not part of it.
package main

import "github.com/corework/taskengine/cmd/taskenginedemo/internal/cli"

var version = "dev"

func main() {
	cli.Execute(version)
}
