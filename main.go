package main

import (
	"log"

	"github.com/pycraft/pycraft/cmd"
)

func main() {
	log.Default().SetFlags(0)
	cmd.Execute()
}
