/*
Package bwt implements the Burrows-Wheeler Transform over nucleotide sequences.

Both directions use the textbook constructions: the forward transform sorts every
cyclic rotation of the input, and the inverse rebuilds the sorted rotation matrix by
repeatedly prepending the transformed text and re-sorting. Each runs in O(n² log n).
Callers validate their input with Validate and Admissible before transforming.
*/
package bwt
