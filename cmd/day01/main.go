// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/aoc2019/fuel"
)

func main() {
	var input string

	flag.StringVar(&input, "i", "input.txt", "Module mass list, one per line")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	inf, err := os.Open(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
	defer inf.Close()

	masses, err := fuel.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	fmt.Printf("Part 1: %d\n", fuel.Sum(masses, fuel.Required))
	fmt.Printf("Part 2: %d\n", fuel.Sum(masses, fuel.Total))
}
