package main

import "feedwatch/cmd"

func main() {
	cmd.Execute()
}
