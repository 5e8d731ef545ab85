package ddcutil

import (
	"fmt"
	"strings"

	"github.com/shinji-kodama/monitor-cli/internal/model"
)

// DefaultBinary is the executable name looked up on PATH.
const DefaultBinary = "ddcutil"

// Invocation is one fully assembled ddcutil command line.
// It is built once and not modified afterwards.
type Invocation struct {
	// Binary is the executable name or path.
	Binary string `json:"binary"`

	// Args are the arguments passed after the binary name.
	Args []string `json:"args"`

	// Mode is the operation the invocation performs.
	Mode model.Mode `json:"mode"`
}

// String returns the invocation as a single space-separated command line.
func (i Invocation) String() string {
	return strings.Join(append([]string{i.Binary}, i.Args...), " ")
}

// BusFlag returns the bus selector argument for the given I2C bus number.
func BusFlag(bus int) string {
	return fmt.Sprintf("--bus=%d", bus)
}

// Build assembles the ddcutil invocation for a request whose feature has
// already been resolved to code.
//
// Leading arguments are the bus selector, the mode keyword and the code.
// Trailing arguments depend on which option the request carries:
//
//	Value -> <value>
//	Up    -> + <delta>
//	Down  -> - <delta>
//
// Option strings are passed through unchanged.
func Build(binary string, bus int, req model.Request, code string) Invocation {
	mode := req.Mode()
	args := []string{BusFlag(bus), mode.Keyword(), code}

	switch {
	case req.Value != nil:
		args = append(args, *req.Value)
	case req.Up != nil:
		args = append(args, "+", *req.Up)
	case req.Down != nil:
		args = append(args, "-", *req.Down)
	}

	return Invocation{Binary: binary, Args: args, Mode: mode}
}
