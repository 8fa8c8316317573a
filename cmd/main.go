// cmd/main.go
package main

import cmd "github.com/mwiater/qstats/cmd/qstats"

// main starts the qstats CLI by delegating to the cobra root command defined
// in the qstats package.
func main() {
	cmd.Execute()
}
