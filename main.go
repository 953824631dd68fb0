package main

import "github.com/Mohsinsiddi/w3net/cmd"

func main() {
	cmd.Execute()
}
