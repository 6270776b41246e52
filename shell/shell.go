// Package shell generates the host-shell integration scripts that wire the
// prompt hooks to the promptbridge binary.
package shell

// Supported shell tags.
const (
	XONSH = "xonsh"
	ZSH   = "zsh"
	BASH  = "bash"
)

// Supported reports whether an integration script exists for the shell.
// Zsh and bash users point the renderer's own init at their shell; the
// bridge's script generation currently targets xonsh.
func Supported(shell string) bool {
	return shell == XONSH
}
