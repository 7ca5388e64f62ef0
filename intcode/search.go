package intcode

import (
	"log"

	"github.com/ezrec/aoc2019/internal"
)

const (
	NOUN_ADDRESS = 1  // Address seeded with the noun.
	VERB_ADDRESS = 2  // Address seeded with the verb.
	SEED_LIMIT   = 99 // Largest noun or verb tried by a search.
)

// Pair is a noun and verb seeded into a program before it runs.
type Pair struct {
	Noun uint64
	Verb uint64
}

// Answer encodes the pair as 100*noun + verb.
func (p Pair) Answer() uint64 {
	return 100*p.Noun + p.Verb
}

// RunWith runs a copy of template with the noun and verb seeded, and
// returns the word left at address 0. The template is not modified.
func RunWith(template Memory, noun, verb uint64) (value uint64, err error) {
	if len(template) <= VERB_ADDRESS {
		err = ErrAddress{Address: VERB_ADDRESS}
		return
	}

	mem := template.Clone()
	mem[NOUN_ADDRESS] = noun
	mem[VERB_ADDRESS] = verb

	err = Run(mem)
	if err != nil {
		return
	}

	value = mem[0]
	return
}

// Search scans noun and verb pairs for one that produces Target.
type Search struct {
	Verbose bool   // If set, logs faulting candidates.
	Target  uint64 // Value wanted at address 0.
	Limit   uint64 // Largest noun or verb to try. Zero means SEED_LIMIT.
}

// FindPair returns the first pair, in noun-major order, for which template
// leaves target at address 0.
func FindPair(template Memory, target uint64) (pair Pair, err error) {
	s := &Search{Target: target}
	return s.Find(template)
}

// Find scans nouns in the outer loop and verbs in the inner loop, and
// returns the first pair that produces s.Target. A candidate whose run
// faults does not match. If no pair matches, ErrSearchExhausted is returned.
func (s *Search) Find(template Memory) (pair Pair, err error) {
	if len(template) <= VERB_ADDRESS {
		err = ErrAddress{Address: VERB_ADDRESS}
		return
	}

	limit := s.Limit
	if limit == 0 {
		limit = SEED_LIMIT
	}

	for noun, verb := range internal.Grid(limit) {
		value, run_err := RunWith(template, noun, verb)
		if run_err != nil {
			if s.Verbose {
				log.Printf("search: noun %d verb %d: %v", noun, verb, run_err)
			}
			continue
		}
		if value == s.Target {
			pair = Pair{Noun: noun, Verb: verb}
			if s.Verbose {
				log.Printf("search: noun %d verb %d: found %d", noun, verb, value)
			}
			return
		}
	}

	err = ErrSearchExhausted
	return
}
