// Package session manages the per-shell-session identity the bridge forwards
// to the renderer: a random session identifier and the host shell's version
// string, both fixed at session startup.
package session

import (
	"os"
	"strings"

	"github.com/google/uuid"
)

// NewID returns a fresh opaque session identifier: a UUIDv4 in hex form
// without dashes. Renderers use it for instance-scoped state such as
// temp-file naming, so uniqueness across concurrent shells is all that
// matters.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// ShellVersion reads the host shell's version string from its conventional
// environment variable. Unknown shells report an empty version; the renderer
// contract allows that.
func ShellVersion(shellTag string) string {
	switch shellTag {
	case "xonsh":
		return os.Getenv("XONSH_VERSION")
	case "zsh":
		return os.Getenv("ZSH_VERSION")
	case "bash":
		return os.Getenv("BASH_VERSION")
	default:
		return ""
	}
}
