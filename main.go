package main

import "github.com/theirongolddev/cbakit/cmd"

func main() {
	cmd.Execute()
}
