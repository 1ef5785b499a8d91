// Package scripting compiles sandboxed GopherLua region filters. Filters see
// only the position under test; they cannot reach the filesystem or the host.
package scripting

import (
	"context"
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"
)

// DefaultInstructionLimit is the opcode budget of one filter evaluation when
// none is configured.
const DefaultInstructionLimit = 10_000

// blockedGlobals are base-library functions that could load code or tune the
// collector from inside a filter.
var blockedGlobals = []string{"dofile", "loadfile", "load", "collectgarbage", "require"}

// opcodeBudget is the context a filter evaluation runs under. The VM polls
// Done once per opcode, so each poll spends one unit; the budget cancels
// itself when it runs out and the evaluation fails with a context error.
type opcodeBudget struct {
	context.Context
	cancel context.CancelFunc
	left   atomic.Int64
}

func (b *opcodeBudget) Done() <-chan struct{} {
	if b.left.Add(-1) <= 0 {
		b.cancel()
	}
	return b.Context.Done()
}

// newBudget returns a budget of n opcodes.
//
// Precondition: n > 0.
func newBudget(n int) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	b := &opcodeBudget{Context: ctx, cancel: cancel}
	b.left.Store(int64(n))
	return b, cancel
}

// NewSandboxedState returns the LState a filter is compiled into. Only the
// base, table, string and math libraries are opened, minus blockedGlobals.
// The state starts with a budget of instLimit opcodes for compiling the
// chunk; Filter.Eval replaces it before every evaluation.
//
// Precondition: instLimit >= 0; 0 uses DefaultInstructionLimit.
// Postcondition: The caller owns the state and must Close it.
func NewSandboxedState(instLimit int) *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	for _, name := range blockedGlobals {
		L.SetGlobal(name, lua.LNil)
	}

	ctx, _ := newBudget(effectiveLimit(instLimit)) //nolint:govet // the budget cancels itself when spent
	L.SetContext(ctx)
	return L
}

func effectiveLimit(instLimit int) int {
	if instLimit <= 0 {
		return DefaultInstructionLimit
	}
	return instLimit
}
