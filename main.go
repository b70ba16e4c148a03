package main

import "GrowthGo/commands"

func main() {
	commands.Execute()
}
