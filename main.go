package main

import "shelf-gateway/cmd"

func main() {
	cmd.Execute()
}
