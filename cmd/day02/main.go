// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/aoc2019/emulator"
	"github.com/ezrec/aoc2019/intcode"
)

func main() {
	var compile string
	var input string
	var target uint64
	var noun uint64
	var verb uint64
	var dump bool
	var verbose bool

	flag.StringVar(&compile, "c", "", "Intcode assembly file to compile and run")
	flag.StringVar(&input, "i", "input.txt", "Intcode program input")
	flag.Uint64Var(&target, "t", 19690720, "Part 2 target value")
	flag.Uint64Var(&noun, "noun", 12, "Part 1 noun")
	flag.Uint64Var(&verb, "verb", 2, "Part 1 verb")
	flag.BoolVar(&dump, "dump", false, "Print final memory")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) != 0 {
		runSource(compile, noun, verb, dump, verbose)
		return
	}

	inf, err := os.Open(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
	defer inf.Close()

	template, err := intcode.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	// Part 1
	mem := template.Clone()
	if len(mem) <= intcode.VERB_ADDRESS {
		log.Fatalf("%v: %v", input, intcode.ErrAddress{Address: intcode.VERB_ADDRESS})
	}
	mem[intcode.NOUN_ADDRESS] = noun
	mem[intcode.VERB_ADDRESS] = verb

	m := intcode.NewMachine(mem)
	m.Verbose = verbose
	err = m.Run()
	if err != nil {
		log.Fatalf("%v: part 1: %v", input, err)
	}
	if verbose {
		log.Printf("%v: part 1:\n%v", input, m)
	}
	if dump {
		fmt.Println(mem)
	}
	fmt.Printf("Part 1: %d\n", mem[0])

	// Part 2
	search := &intcode.Search{Target: target, Verbose: verbose}
	pair, err := search.Find(template)
	if err != nil {
		log.Fatalf("%v: part 2: %v", input, err)
	}
	fmt.Printf("Part 2: %d\n", pair.Answer())
}

// runSource assembles and runs an Intcode source file.
func runSource(compile string, noun, verb uint64, dump, verbose bool) {
	inf, err := os.Open(compile)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}
	defer inf.Close()

	asm := &intcode.Assembler{Verbose: verbose}
	asm.Predefine("NOUN", fmt.Sprintf("%d", noun))
	asm.Predefine("VERB", fmt.Sprintf("%d", verb))
	prog, err := asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose

	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	}

	if dump {
		fmt.Println(emu.Machine.Memory)
	}
	fmt.Printf("%d\n", emu.Machine.Memory[0])
}
