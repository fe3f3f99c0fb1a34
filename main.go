package main

import "github.com/duartefontes/pedidozap/cmd"

func main() {
	cmd.Execute()
}
