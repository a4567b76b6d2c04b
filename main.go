package main

import "github.com/jaki95/melodist/cmd"

func main() {
	cmd.Execute()
}
