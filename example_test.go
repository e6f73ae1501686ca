package bwtnet_test

import (
	"context"
	"fmt"

	"github.com/aretw0/bwtnet"
)

// ExampleConverter_Reply converts a DNA record and a BWT record in one batch.
func ExampleConverter_Reply() {
	conv := bwtnet.New()

	fmt.Println(conv.Reply(context.Background(), ">seq1\nACGT\n<seq2\nACTGA$TA\n"))
	// Output:
	// < seq1
	// T$ACG
	// > seq2
	// GATTACA$
}

// ExampleConverter_Reply_skipped shows the error block that precedes the
// converted records when some records cannot be converted.
func ExampleConverter_Reply_skipped() {
	conv := bwtnet.New()

	fmt.Println(conv.Reply(context.Background(), ">seq1\nACGT\n>seq2\nACGU\n"))
	// Output:
	// %%%>seq2
	// < seq1
	// T$ACG
}
