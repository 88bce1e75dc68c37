package main

import "github.com/MyCarrier-DevOps/go-branch-name-lint/cmd"

func main() {
	cmd.Execute()
}
