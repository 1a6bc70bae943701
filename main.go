package main

import "github.com/lriva/percgrid/cmd"

func main() {
	cmd.Execute()
}
