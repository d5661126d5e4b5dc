package main

import "github.com/oshokin/statebox/cmd/statebox/cmd"

func main() {
	cmd.Execute()
}
