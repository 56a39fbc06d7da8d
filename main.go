package main

import "github.com/vocalens/vocalens/cmd"

func main() {
	cmd.Execute()
}
