package main

import "github.com/theirongolddev/bizlens/cmd"

func main() {
	cmd.Execute()
}
