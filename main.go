package main

import "github.com/Tiliavir/studyhub/cmd"

func main() {
	cmd.Execute()
}
