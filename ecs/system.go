package ecs

// Mode tells whether a system can change component data.
type Mode uint8

const (
	// Mutating systems write components or change the storage structure.
	Mutating Mode = iota
	// ReadOnly systems only observe the storage. Two read-only systems can never
	// conflict, which makes them candidates for concurrent execution; the
	// scheduler still runs them one after another.
	ReadOnly
)

func (m Mode) String() string {
	if m == ReadOnly {
		return "read-only"
	}
	return "mutating"
}

// System is one unit of per-tick computation. C is the per-tick context, M the
// message type of the shared queue and S the terminal signal type.
//
// Run must complete its whole read, compute, write cycle before returning and
// must not keep the storage or queue afterwards.
type System[C, M, S any] interface {
	Name() string
	Mode() Mode
	Run(storage *Storage, queue *Queue[M], ctx C) (S, bool)
}

// MessageHandler filters or transforms the incoming queue before a system
// computes. The returned messages go back on the queue.
type MessageHandler[M any] func(storage *Storage, in []M) []M

type systemOptions[M any] struct {
	handler MessageHandler[M]
}

// SystemOption configures a BasicSystem.
type SystemOption[M any] func(o *systemOptions[M])

// WithMessageHandler installs a handler that sees the drained queue before the
// system's snapshot is taken.
func WithMessageHandler[M any](handler func(storage *Storage, in []M) []M) SystemOption[M] {
	return func(o *systemOptions[M]) {
		o.handler = handler
	}
}

// UpdateFunc computes a system's output for one tick from its snapshot.
type UpdateFunc[C, M, S, In, Out any] func(rows []Row[In], frame *UpdateFrame[C, M, S, Out])

// BasicSystem runs an UpdateFunc over the entities matching an input shape and
// stores its output through an output shape.
type BasicSystem[C, M, S, In, Out any] struct {
	name    string
	query   *Query[In]
	output  Write[Out]
	update  UpdateFunc[C, M, S, In, Out]
	handler MessageHandler[M]
	frame   *UpdateFrame[C, M, S, Out]
}

// NewSystem creates a system. The update function usually is a method value so
// that the system keeps private state between ticks.
func NewSystem[C, M, S, In, Out any](
	name string,
	input Access[In],
	output Write[Out],
	update func(rows []Row[In], frame *UpdateFrame[C, M, S, Out]),
	opts ...SystemOption[M],
) *BasicSystem[C, M, S, In, Out] {
	if update == nil {
		panic("ecs: system " + name + " has no update function")
	}

	o := &systemOptions[M]{}
	for _, opt := range opts {
		opt(o)
	}

	s := &BasicSystem[C, M, S, In, Out]{
		name:    name,
		query:   NewQuery(input),
		output:  output,
		update:  update,
		handler: o.handler,
	}

	var commands *Commands
	if s.Mode() == Mutating {
		commands = newCommands()
	}
	s.frame = newUpdateFrame[C, M, S, Out](commands)
	return s
}

// NewReadOnlySystem creates a system whose output is the empty shape.
func NewReadOnlySystem[C, M, S, In any](
	name string,
	input Access[In],
	observe func(rows []Row[In], frame *UpdateFrame[C, M, S, Nothing]),
) *BasicSystem[C, M, S, In, Nothing] {
	return NewSystem(name, input, NoWrite(), observe)
}

// NewSimpleSystem creates a system that maps every matching entity to at most
// one output and never sends messages or signals. M and S must be given
// explicitly since nothing in the arguments mentions them.
func NewSimpleSystem[M, S, C, In, Out any](
	name string,
	input Access[In],
	output Write[Out],
	fn func(ctx C, id EntityId, in In) (Out, bool),
) *BasicSystem[C, M, S, In, Out] {
	return NewSystem(name, input, output, func(rows []Row[In], frame *UpdateFrame[C, M, S, Out]) {
		for _, row := range rows {
			if out, ok := fn(frame.Context, row.Id, row.View); ok {
				frame.Write(row.Id, out)
			}
		}
	})
}

func (s *BasicSystem[C, M, S, In, Out]) Name() string {
	return s.name
}

// Mode is ReadOnly when the output shape writes nothing and no message handler
// was installed, since handlers are given the storage.
func (s *BasicSystem[C, M, S, In, Out]) Mode() Mode {
	if s.handler == nil && !s.output.mutates() {
		return ReadOnly
	}
	return Mutating
}

// Query returns the snapshot used by the last run.
func (s *BasicSystem[C, M, S, In, Out]) Query() *Query[In] {
	return s.query
}

// Run performs one read, compute, write cycle.
func (s *BasicSystem[C, M, S, In, Out]) Run(storage *Storage, queue *Queue[M], ctx C) (S, bool) {
	if s.handler != nil {
		queue.Push(s.handler(storage, queue.Drain())...)
	}

	s.query.Execute(storage)

	frame := s.frame
	frame.reset(ctx)
	s.update(s.query.Rows(), frame)

	for _, w := range frame.writes {
		Apply(storage, w.id, s.output, w.out)
	}
	if frame.Commands != nil {
		frame.Commands.Flush(storage)
	}
	queue.Push(frame.messages...)

	return frame.signal, frame.signalled
}
