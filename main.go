package main

import "github.com/qrave1/zoomer/cmd"

func main() {
	cmd.Execute()
}
