// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command lzvm parses and runs line programs built from print, repeat and
// reverse instructions.
package main

import (
	"log"
	"os"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		log.Printf("%v: %v", appName, err)
		os.Exit(1)
	}
}
