package ecs

// System is a per-tick update routine. Systems locate entities through the
// frame's Query and mutate the returned components in place.
// User-defined systems may embed Singleton fields; the Scheduler initializes
// them at registration.
type System interface {
	Execute(frame *UpdateFrame) error
}

// SystemFunc adapts a function to the System interface.
type SystemFunc func(frame *UpdateFrame) error

func (f SystemFunc) Execute(frame *UpdateFrame) error {
	return f(frame)
}
