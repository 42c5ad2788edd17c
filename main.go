package main

import "github.com/trumpetlab/arranger/cmd"

func main() {
	cmd.Execute()
}
