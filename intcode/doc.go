// Package intcode implements the Intcode machine and its assembler.
//
// An Intcode program is a flat memory of unsigned words that holds both the
// instructions and the data they operate on. Each instruction is an opcode
// followed by the addresses of its operands, so a running program may rewrite
// instructions that have not executed yet.
//
// The machine supports add (1), mul (2) and halt (99). The parameter search
// seeds addresses 1 and 2 with a noun and a verb, and scans every pair until
// the program leaves the requested value in address 0.
//
// The assembler provides a small source language for Intcode memory,
// supporting labels, equates, raw data and compile-time expressions.
package intcode
