package ecs

// Commands buffers work that must run after every system of a tick has
// executed, such as rendering callbacks that read the final component values.
// The tree is static, so there are no structural commands.
type Commands struct {
	defers []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs all queued functions in order, resetting the buffer state.
// Functions queued during Flush run in the same call.
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i].fn()
	}
	c.defers = c.defers[:0]
}
