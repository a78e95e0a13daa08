package main

import "tw-network-manager/cmd"

func main() {
	cmd.Execute()
}
