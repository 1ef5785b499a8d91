package scripting

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/alenalex/mcutil/internal/location"
)

// Filter is a compiled Lua predicate over block positions. The script sees the
// globals world (string) and x, y, z (block integers) plus the mc helper table,
// and must evaluate to a boolean; anything other than true rejects the position.
//
// A Filter owns a single LState and is not safe for concurrent use.
type Filter struct {
	src    string
	limit  int
	state  *lua.LState
	fn     *lua.LFunction
	logger *zap.Logger
}

// CompileFilter compiles src. src may be a bare expression ("y > 64") or a
// chunk with an explicit return statement.
//
// Precondition: instLimit >= 0; 0 uses DefaultInstructionLimit.
// Postcondition: Returns a ready Filter or a compile error. The caller must Close it.
func CompileFilter(src string, instLimit int, logger *zap.Logger) (*Filter, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("compiling filter: empty source")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("filter")
	L := NewSandboxedState(instLimit)
	RegisterModules(L, logger)

	fn, err := L.LoadString("return " + src)
	if err != nil {
		var chunkErr error
		fn, chunkErr = L.LoadString(src)
		if chunkErr != nil {
			L.Close()
			return nil, fmt.Errorf("compiling filter: %w", chunkErr)
		}
	}

	return &Filter{
		src:    src,
		limit:  effectiveLimit(instLimit),
		state:  L,
		fn:     fn,
		logger: logger,
	}, nil
}

// Source returns the script the filter was compiled from.
func (f *Filter) Source() string { return f.src }

// Match evaluates the filter for p. Runtime errors, including exceeding the
// instruction limit, reject the position and are logged at warn level.
func (f *Filter) Match(p location.Position) bool {
	ok, err := f.Eval(p)
	if err != nil {
		f.logger.Warn("filter evaluation failed",
			zap.String("position", location.Encode(p)),
			zap.Error(err),
		)
		return false
	}
	return ok
}

// Eval evaluates the filter for p and reports runtime errors to the caller.
//
// Postcondition: Returns (true, nil) only when the script yields boolean true.
func (f *Filter) Eval(p location.Position) (bool, error) {
	ctx, cancel := newBudget(f.limit)
	defer cancel()
	f.state.SetContext(ctx)

	L := f.state
	L.SetGlobal("world", lua.LString(p.World))
	L.SetGlobal("x", lua.LNumber(p.BlockX()))
	L.SetGlobal("y", lua.LNumber(p.BlockY()))
	L.SetGlobal("z", lua.LNumber(p.BlockZ()))

	L.Push(f.fn)
	if err := L.PCall(0, 1, nil); err != nil {
		return false, fmt.Errorf("running filter: %w", err)
	}
	ret := L.Get(-1)
	L.Pop(1)
	return ret == lua.LTrue, nil
}

// Predicate adapts f for location.BlocksInSquare and location.BlocksInCircle.
func (f *Filter) Predicate() location.Predicate {
	return f.Match
}

// Close releases the Lua state.
func (f *Filter) Close() {
	f.state.Close()
}
