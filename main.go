package main

import "sheetsync/cmd"

func main() {
	cmd.Execute()
}
