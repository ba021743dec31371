package main

import "github.com/anchore/go-semver/cmd"

func main() {
	cmd.Execute()
}
