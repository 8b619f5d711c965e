// Package canonhuff builds canonical Huffman codes from symbol weights and
// decodes the bitstreams they produce, one symbol at a time.
//
// Construction runs in three stages: BuildTree turns weights into a
// parent-linked tree, ParentMap.CodeLengths measures the depth of every
// leaf, and AssignCodes turns those depths into canonical bitstrings.  Only
// the resulting Histogram (the number of codes of each bit length) is needed
// to decode, because a canonical code is fully determined by it.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Canonical_Huffman_code>
//
//	<https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2.2
package canonhuff
