package ecs

// UpdateFrame collects what a system produces during one run: component writes
// routed through its output shape, messages for the shared queue, an optional
// terminal signal and deferred structural commands.
type UpdateFrame[C, M, S, Out any] struct {
	// Context is the per-tick value handed to Driver.Advance.
	Context C
	// Commands buffers entity creation and removal until the system's writes
	// have been applied. It is nil for read-only systems.
	Commands *Commands

	writes    []pendingWrite[Out]
	messages  []M
	signal    S
	signalled bool
}

type pendingWrite[Out any] struct {
	id  EntityId
	out Out
}

func newUpdateFrame[C, M, S, Out any](commands *Commands) *UpdateFrame[C, M, S, Out] {
	return &UpdateFrame[C, M, S, Out]{
		Commands: commands,
	}
}

// Write queues out to be stored on the entity after the update returns. Writing
// the same entity twice keeps the last value.
func (f *UpdateFrame[C, M, S, Out]) Write(id EntityId, out Out) {
	f.writes = append(f.writes, pendingWrite[Out]{id: id, out: out})
}

// Send queues messages for the shared queue.
func (f *UpdateFrame[C, M, S, Out]) Send(msgs ...M) {
	f.messages = append(f.messages, msgs...)
}

// Signal records a terminal value for the tick. Only the first call in a run is
// kept.
func (f *UpdateFrame[C, M, S, Out]) Signal(s S) {
	if f.signalled {
		return
	}
	f.signal = s
	f.signalled = true
}

func (f *UpdateFrame[C, M, S, Out]) reset(ctx C) {
	var zeroSignal S
	clear(f.writes)
	clear(f.messages)
	f.Context = ctx
	f.writes = f.writes[:0]
	f.messages = f.messages[:0]
	f.signal = zeroSignal
	f.signalled = false
}
