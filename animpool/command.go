package animpool

import "sync"

// CommandKind identifies a queued track mutation.
type CommandKind uint8

const (
	CommandLoad CommandKind = iota + 1
	CommandPlay
	CommandPause
	CommandDiscard
	CommandSeek
)

func (k CommandKind) String() string {
	switch k {
	case CommandLoad:
		return "load"
	case CommandPlay:
		return "play"
	case CommandPause:
		return "pause"
	case CommandDiscard:
		return "discard"
	case CommandSeek:
		return "seek"
	default:
		return "unknown"
	}
}

// Command is a pending mutation of one track.
type Command struct {
	Kind    CommandKind
	ID      ID
	Content []byte // Load only
	Frame   int    // Seek only
}

// CommandQueue collects commands from any goroutine. The render goroutine
// drains it once per sync.
type CommandQueue struct {
	mu    sync.Mutex
	items []Command
}

// Push appends a command.
func (q *CommandQueue) Push(cmd Command) {
	if q == nil {
		return
	}
	q.mu.Lock()
	q.items = append(q.items, cmd)
	q.mu.Unlock()
}

// Drain returns all pending commands in push order and empties the queue.
func (q *CommandQueue) Drain() []Command {
	if q == nil {
		return nil
	}
	q.mu.Lock()
	out := q.items
	q.items = nil
	q.mu.Unlock()
	return out
}

// Len returns the number of pending commands.
func (q *CommandQueue) Len() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
