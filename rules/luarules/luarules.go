// Package luarules adapts a Lua script into an arena.Rules value, so a
// game can be supplied as a script next to the agent programs instead
// of a compiled-in Go package.
//
// The script must define six global functions:
//
//	opening(seat, players) -> string
//	sanitize(raw)          -> move|nil, reason|nil
//	apply(seat, move)
//	encode(move)           -> string
//	render(seat)           -> string
//	finished()             -> over, winner
//
// Moves cross the boundary as opaque Lua values; the harness never
// inspects them.
package luarules

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"botarena"
)

// requiredGlobals are the functions every rules script must export.
var requiredGlobals = []string{
	"opening", "sanitize", "apply", "encode", "render", "finished",
}

// Rules drives one Lua state. The scheduler calls from one goroutine,
// but the start fan-out may call Opening for several seats at once and
// an LState is not goroutine-safe, so calls are serialized.
type Rules struct {
	mu    sync.Mutex
	state *lua.LState
}

var _ arena.Rules = (*Rules)(nil)

// Load compiles and runs the script at path, then checks it exports the
// full rules contract.
func Load(path string) (*Rules, error) {
	L := lua.NewState()
	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("luarules: load %s: %w", path, err)
	}
	return wrap(L)
}

// LoadString is Load for an in-memory script.
func LoadString(src string) (*Rules, error) {
	L := lua.NewState()
	if err := L.DoString(src); err != nil {
		L.Close()
		return nil, fmt.Errorf("luarules: load script: %w", err)
	}
	return wrap(L)
}

func wrap(L *lua.LState) (*Rules, error) {
	for _, name := range requiredGlobals {
		if _, ok := L.GetGlobal(name).(*lua.LFunction); !ok {
			L.Close()
			return nil, fmt.Errorf("luarules: script does not define %s()", name)
		}
	}
	return &Rules{state: L}, nil
}

// Close releases the Lua state. The Rules value is unusable afterwards.
func (r *Rules) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.Close()
}

// call invokes the named global with args and returns nret results.
func (r *Rules) call(name string, nret int, args ...lua.LValue) ([]lua.LValue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.state.CallByParam(lua.P{
		Fn:      r.state.GetGlobal(name),
		NRet:    nret,
		Protect: true,
	}, args...)
	if err != nil {
		return nil, fmt.Errorf("luarules: %s: %w", name, err)
	}

	ret := make([]lua.LValue, nret)
	for i := nret - 1; i >= 0; i-- {
		ret[i] = r.state.Get(-1)
		r.state.Pop(1)
	}
	return ret, nil
}

func (r *Rules) Opening(seat, players int) string {
	ret, err := r.call("opening", 1, lua.LNumber(seat), lua.LNumber(players))
	if err != nil {
		return ""
	}
	return lua.LVAsString(ret[0])
}

// Sanitize maps the script's (move, reason) pair onto the harness
// contract: a non-nil second value rejects, anything else accepts.
func (r *Rules) Sanitize(raw string) (arena.Move, arena.Reason) {
	ret, err := r.call("sanitize", 2, lua.LString(raw))
	if err != nil {
		return nil, arena.ReasonCrash
	}
	if ret[1] != lua.LNil {
		return nil, arena.Reason(lua.LVAsString(ret[1]))
	}
	if ret[0] == lua.LNil {
		return nil, arena.ReasonCrash
	}
	return ret[0], ""
}

func (r *Rules) Apply(seat int, mv arena.Move) error {
	v, ok := mv.(lua.LValue)
	if !ok {
		return fmt.Errorf("luarules: unexpected move %T", mv)
	}
	_, err := r.call("apply", 0, lua.LNumber(seat), v)
	return err
}

func (r *Rules) Encode(mv arena.Move) string {
	v, ok := mv.(lua.LValue)
	if !ok {
		return arena.NoMove
	}
	ret, err := r.call("encode", 1, v)
	if err != nil {
		return arena.NoMove
	}
	return lua.LVAsString(ret[0])
}

func (r *Rules) Render(c *arena.Console, seat int) {
	ret, err := r.call("render", 1, lua.LNumber(seat))
	if err != nil {
		return
	}
	if text := lua.LVAsString(ret[0]); text != "" {
		c.Print(text)
	}
}

func (r *Rules) Finished() (bool, int) {
	ret, err := r.call("finished", 2)
	if err != nil {
		return false, -1
	}
	over := lua.LVAsBool(ret[0])
	winner := -1
	if n, ok := ret[1].(lua.LNumber); ok {
		winner = int(n)
	}
	return over, winner
}
