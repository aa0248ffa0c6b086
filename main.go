package main

import "vslc/cmd"

func main() {
	cmd.Execute()
}
