/*
Package bwtnet converts batches of DNA and Burrows-Wheeler-Transformed sequences.

A batch is plain text made of records. Each record is a header line followed by
one or more sequence lines:

	>seq1
	ACGT
	<seq2
	T$ACG

Headers starting with '>' hold DNA that is converted to its BWT; headers starting
with '<' hold a BWT that is inverted back to DNA. Converted records come back with
the opposite marker. Records whose body is empty, holds symbols outside the extended
nucleotide alphabet, or breaks the termination-symbol rules of its direction are
skipped and reported in a leading error block.

# Usage

	package main

	import (
		"context"
		"fmt"

		"github.com/aretw0/bwtnet"
	)

	func main() {
		conv := bwtnet.New()
		fmt.Println(conv.Reply(context.Background(), ">seq1\nACGT\n"))
		// < seq1
		// T$ACG
	}

The same Converter backs the TCP server in pkg/server, which frames every request
and reply with the "/0" terminator.
*/
package bwtnet
