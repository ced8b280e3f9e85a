package main

import (
	cmd "github.com/kerbaras/nebulae/cmd/nebulae"
)

func main() {
	cmd.Execute()
}
