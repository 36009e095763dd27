package domain

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ArgumentList is the ordered set of flags handed to the external build
// system's configure step. Identical resolver inputs always produce a
// byte-identical list, so the build directory's configure cache stays
// valid across invocations.
type ArgumentList []string

// Fingerprint returns a stable hash of the list. The driver stores it per
// target to detect that a staging directory was configured with different
// arguments than the current invocation.
func (a ArgumentList) Fingerprint() string {
	h := xxhash.New()
	for _, arg := range a {
		_, _ = h.WriteString(arg)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// String renders the list the way it appears on the command line.
func (a ArgumentList) String() string {
	return strings.Join(a, " ")
}
