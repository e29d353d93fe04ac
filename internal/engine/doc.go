// Package engine drives an aes.Context over whole buffers.
//
// A Backend maps the single-block transform over every block of an aligned
// buffer, either one block after the other or as a bounded pool of tasks that
// each own a contiguous run of blocks. Blocks carry no state between them, so
// both backends produce identical output. Transform adds the policy for input
// that does not end on a block boundary.
package engine
