package main

import "github.com/oshokin/toolver/cmd/toolver/cmd"

func main() {
	cmd.Execute()
}
