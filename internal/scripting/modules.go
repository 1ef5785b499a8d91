package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// RegisterModules installs the mc global table into L:
//
//	mc.log(msg)            writes msg to the filter's logger at debug level
//	mc.between(v, lo, hi)  reports lo <= v <= hi
//
// Precondition: L must be from NewSandboxedState.
func RegisterModules(L *lua.LState, logger *zap.Logger) {
	mc := L.NewTable()
	L.SetField(mc, "log", L.NewFunction(func(L *lua.LState) int {
		logger.Debug("lua", zap.String("msg", L.CheckString(1)))
		return 0
	}))
	L.SetField(mc, "between", L.NewFunction(func(L *lua.LState) int {
		v, lo, hi := L.CheckNumber(1), L.CheckNumber(2), L.CheckNumber(3)
		L.Push(lua.LBool(lo <= v && v <= hi))
		return 1
	}))
	L.SetGlobal("mc", mc)
}
