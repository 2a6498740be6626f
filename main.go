package main

import "github.com/gradinita/leave-management/cmd"

func main() {
	cmd.Execute()
}
