// Package pm4 implements the PM4 command-buffer encoding consumed by the
// graphics command processor.
//
// A command buffer is a sequence of little-endian 32-bit words. Each packet
// starts with a one-word header carrying a packet type, and for type 3
// packets an IT opcode and a payload word count. Decode validates a packet
// against the remaining stream and returns a tagged per-opcode value; the
// Make* constructors produce the matching encoded words for producers.
//
// The package also provides a single-pass assembler for a textual command
// stream listing, supporting equates and compile-time $() expression
// evaluation.
package pm4
