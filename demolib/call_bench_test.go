//go:build cgo

package demolib

import "testing"

// Sink is a global to prevent compiler optimizations removing the work.
var Sink int32

// ------------------------
// 1. Native Go call
// ------------------------

func addGo(a, b int32) int32 {
	return a + b
}

func BenchmarkNativeCall(b *testing.B) {
	var acc int32
	a, c := int32(1), int32(2)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		acc += addGo(a, c)
	}
	Sink = acc
}

// ------------------------
// 2. cgo call into trivial_add
// ------------------------

func BenchmarkCgoCall(b *testing.B) {
	var acc int32
	a, c := int32(1), int32(2)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		acc += Add(a, c)
	}
	Sink = acc
}

// ------------------------
// 3. Call-through-channels
// ------------------------

type addRequest struct {
	A, B int32
	Resp chan int32
}

func addWorker(reqCh <-chan addRequest) {
	for req := range reqCh {
		req.Resp <- Add(req.A, req.B)
	}
}

func BenchmarkChannelCall(b *testing.B) {
	reqCh := make(chan addRequest)
	respCh := make(chan int32)

	go addWorker(reqCh)

	a, c := int32(1), int32(2)
	var acc int32

	// Warm up once
	reqCh <- addRequest{A: a, B: c, Resp: respCh}
	<-respCh

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		reqCh <- addRequest{A: a, B: c, Resp: respCh}
		acc += <-respCh
	}

	b.StopTimer()
	Sink = acc
	close(reqCh)
}
