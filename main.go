package main

import (
	"github.com/prasetya/neraca/cmd"
)

func main() {
	cmd.Execute()
}
