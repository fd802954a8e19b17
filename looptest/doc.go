// Package looptest provides a manually driven [timer.Loop] for tests and examples.
//
// [ManualLoop] runs on a virtual clock: nothing fires until [ManualLoop.Advance]
// moves the clock forward. Due timers are fired synchronously on the calling
// goroutine, in deadline order, with the same "return false to stop" contract as
// a real main loop.
//
//	loop := looptest.NewManualLoop(nil)
//	reg, _ := timer.NewRegistrar(loop, nil)
//	h, _ := reg.Schedule(ctx, 100*time.Millisecond, cb, timer.Args{}, nil)
//	loop.Advance(250 * time.Millisecond) // cb fired twice if it returns timer.Continue
//	state, _ := loop.State(h)
package looptest

//go:generate go tool errtrace -w .
