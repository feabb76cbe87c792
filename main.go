package main

import "github.com/fuzzyedit/fuzzyedit/cmd"

func main() {
	cmd.Execute()
}
