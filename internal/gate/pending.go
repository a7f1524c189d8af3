package gate

import "github.com/thenoetrevino/tablero/internal/board"

// Pending is the outcome of one dispatched command
type Pending struct {
	cmd  board.Command
	done chan struct{}
	err  error
}

func newPending(cmd board.Command) *Pending {
	return &Pending{cmd: cmd, done: make(chan struct{})}
}

func resolved(cmd board.Command, err error) *Pending {
	p := newPending(cmd)
	p.resolve(err)
	return p
}

func (p *Pending) resolve(err error) {
	p.err = err
	close(p.done)
}

// Command returns the dispatched command
func (p *Pending) Command() board.Command {
	return p.cmd
}

// Done is closed once the command is confirmed or rolled back
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the command settles and returns its error
func (p *Pending) Wait() error {
	<-p.done
	return p.err
}

// Err returns the outcome, or nil while the command is still in flight
func (p *Pending) Err() error {
	select {
	case <-p.done:
		return p.err
	default:
		return nil
	}
}
