package core

type Signal any

// RenderSignal asks the consumer to display the buffer ("s").
type RenderSignal struct{}

// HelpSignal asks the consumer to display the command table ("?").
type HelpSignal struct{}

// QuitSignal ends the session ("q").
type QuitSignal struct{}

// ErrorSignal reports a failure outside the editing model, such as the
// system clipboard rejecting a yanked line.
type ErrorSignal struct {
	err error
}

func (e ErrorSignal) Value() error {
	return e.err
}

func (e *editor) DispatchSignal(signal Signal) {
	select {
	case e.updateSignal <- signal:
	default: // Ignore if the channel is full
		e.logger.Warn("signal dropped, channel full", "signal", signal)
	}
}
