package main

import "github.com/Zachkp/techfolio/cmd"

func main() {
	cmd.Execute()
}
