package main

import (
	"log"

	"tableflip.dev/outliner/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("outliner: %v", err)
	}
}
