package main

import "github.com/PriyanshAroraa/CreatorPulse/cmd"

func main() {
	cmd.Execute()
}
