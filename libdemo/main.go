//go:build cgo

// Shared-object form of the demo library, for feeding to binding
// generators that consume a header/library pair.
//
// Build with:
//
//	go build -buildmode=c-shared -o libdemo.so ./libdemo
//
// The build also emits libdemo.h declaring the exported symbol.
package main

import "C"

// add carries the arithmetic so it stays callable without cgo types.
func add(a, b int32) int32 {
	return a + b
}

//export trivial_add
func trivial_add(a, b C.int) C.int {
	return C.int(add(int32(a), int32(b)))
}

// main is required for the c-shared target, even if it isn't used.
func main() {}
