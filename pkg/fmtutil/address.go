package fmtutil

import "fmt"

// TruncateAddress shortens an opaque address string to its first head and
// last tail characters separated by an ellipsis. Addresses short enough to
// display in full are returned unchanged.
func TruncateAddress(addr string, head, tail int) string {
	if head < 0 {
		head = 0
	}
	if tail < 0 {
		tail = 0
	}
	if len(addr) <= head+tail+3 {
		return addr
	}
	return fmt.Sprintf("%s...%s", addr[:head], addr[len(addr)-tail:])
}
