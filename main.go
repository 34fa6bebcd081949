package main

import "regaudit/cmd"

func main() {
	cmd.Execute()
}
