package main

import (
	"log"

	"github.com/DIEGO120000/agenda-test01/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
