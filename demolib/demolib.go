//go:build cgo

// Package demolib wraps the trivial_add native library.
//
// The C sources live in this package and are compiled by cgo, so the
// exported symbol `int trivial_add(int a, int b)` is available both to this
// wrapper and, when built as a shared object, to any binding generator that
// consumes demolib.h.
package demolib

/*
#include "demolib.h"
*/
import "C"

// Add is a small wrapper exposing the C implementation as a normal Go
// function. The sum wraps around at the int32 boundaries; there is no
// overflow check on either side of the call.
func Add(a, b int32) int32 {
	return int32(C.trivial_add(C.int(a), C.int(b)))
}
