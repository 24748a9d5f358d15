package main

import "shop-backoffice/cmd/shopctl/commands"

func main() {
	commands.Execute()
}
