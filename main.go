package main

import "github.com/emtaxi/emtaxi_backend/cmd"

func main() {
	cmd.Execute()
}
