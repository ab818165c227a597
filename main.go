package main

import "github.com/alvea-app/ax-agent/cmd"

func main() {
	cmd.Execute()
}
