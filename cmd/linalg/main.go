// SPDX-License-Identifier: MIT

// Command linalg evaluates kernel operations from the command line.
//
//	linalg eval -f operands.yaml            # op taken from the document
//	linalg eval mul_matrices -f - -o json   # op from args, document from stdin
//	linalg bench --size 500                 # time a random N×N product
//	linalg ops                              # list supported operations
//
// Operand documents are YAML or JSON objects with keys op, v1, v2, v, m1,
// m2, m and k, named after the operation's inputs.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
