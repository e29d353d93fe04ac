// Package encryption runs the AES cipher over files.
//
// A Processor expands the key once and shares the schedule across every
// input. Each file is read whole, transformed by the selected engine under
// the configured tail policy, and written atomically next to its
// destination. Files are processed concurrently; results are reported in
// completion order by a single printer goroutine.
//
// The package also streams files through the SHA-256 engine for the digest command.
package encryption
