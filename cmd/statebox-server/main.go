package main

import "github.com/oshokin/statebox/cmd/statebox-server/cmd"

func main() {
	cmd.Execute()
}
