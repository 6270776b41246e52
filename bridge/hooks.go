package bridge

import "context"

// Hook is a no-argument prompt callback in the shape host shells expect: the
// renderer loop calls it before each prompt draw and uses the returned string
// verbatim.
type Hook func() string

// PrimaryHook returns the hook for the primary prompt. A failed renderer
// invocation degrades to an empty prompt segment; the error is logged at
// debug level rather than surfaced into the user's terminal.
func (b *Bridge) PrimaryHook() Hook {
	return b.hook(ModePrimary)
}

// RightHook returns the hook for the right-aligned prompt.
func (b *Bridge) RightHook() Hook {
	return b.hook(ModeRight)
}

func (b *Bridge) hook(mode Mode) Hook {
	return func() string {
		out, err := b.render(context.Background(), mode)
		if err != nil {
			b.log.WithError(err).WithField("mode", mode).Debug("prompt render failed")
			return ""
		}
		return out
	}
}
