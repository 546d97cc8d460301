package main

import "github.com/pypdfium2-team/demolib-go/cmd"

func main() {
	cmd.Execute()
}
