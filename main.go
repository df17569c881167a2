package main

import "github.com/itsmostafa/mdstruct/cmd"

func main() {
	cmd.Execute()
}
