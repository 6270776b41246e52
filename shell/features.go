package shell

// Feature toggles an optional piece of the generated integration script.
type Feature byte

const (
	// RPrompt enables the right-aligned prompt hook.
	RPrompt Feature = iota
)

// Features is the set of enabled integration features.
type Features []Feature

// Code is one line of shell integration script.
type Code string

// Lines is an ordered list of script lines appended after the base script.
type Lines []Code

// Lines returns the script lines enabling the features for the given shell.
func (f Features) Lines(shell string) Lines {
	var lines Lines

	for _, feature := range f {
		var code Code

		switch shell {
		case XONSH:
			code = feature.Xonsh()
		}

		if len(code) > 0 {
			lines = append(lines, code)
		}
	}

	return lines
}

// Xonsh returns the xonsh code enabling the feature.
func (f Feature) Xonsh() Code {
	switch f {
	case RPrompt:
		return "$RIGHT_PROMPT = _pb_right"
	default:
		return ""
	}
}

// String appends the feature lines to the base script.
func (l Lines) String(script string) string {
	for _, line := range l {
		script += "\n" + string(line)
	}
	return script
}
