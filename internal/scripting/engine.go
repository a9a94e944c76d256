package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/petiteville/server/internal/core/ecs"
	"github.com/petiteville/server/internal/data"
	"github.com/petiteville/server/internal/world"
)

// Engine wraps a single gopher-lua VM for scenario setup. Scripts run once
// at boot on the simulation goroutine; they spawn entities from species
// templates and adjust components. Scripts never run during ticks, so they
// cannot perturb determinism beyond the initial state they build.
type Engine struct {
	vm      *lua.LState
	st      *world.State
	species *data.SpeciesTable
	log     *zap.Logger
}

// NewEngine creates a Lua engine bound to the world state and registers the
// scenario API.
func NewEngine(st *world.State, species *data.SpeciesTable, log *zap.Logger) *Engine {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, st: st, species: species, log: log}
	e.registerWorldAPI()
	return e
}

func (e *Engine) Close() {
	e.vm.Close()
}

// LoadDir runs every .lua file in a directory in name order. A missing
// directory is not an error.
func (e *Engine) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read scripts dir %s: %w", dir, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("run script %s: %w", path, err)
		}
		e.log.Debug("scenario script loaded", zap.String("script", name))
	}
	return nil
}

// registerWorldAPI exposes the scenario surface as a `world` table.
func (e *Engine) registerWorldAPI() {
	tbl := e.vm.NewTable()

	e.vm.SetField(tbl, "spawn", e.vm.NewFunction(e.luaSpawn))
	e.vm.SetField(tbl, "despawn", e.vm.NewFunction(e.luaDespawn))
	e.vm.SetField(tbl, "set_position", e.vm.NewFunction(e.luaSetPosition))
	e.vm.SetField(tbl, "set_hunger", e.vm.NewFunction(e.luaSetHunger))
	e.vm.SetField(tbl, "set_health", e.vm.NewFunction(e.luaSetHealth))
	e.vm.SetField(tbl, "count", e.vm.NewFunction(e.luaCount))

	e.vm.SetGlobal("world", tbl)
}

// world.spawn(species, x, y) -> id or nil
func (e *Engine) luaSpawn(L *lua.LState) int {
	key := L.CheckString(1)
	x := int32(L.CheckInt(2))
	y := int32(L.CheckInt(3))

	sp := e.species.Get(key)
	if sp == nil {
		e.log.Warn("scenario spawn of unknown species", zap.String("species", key))
		L.Push(lua.LNil)
		return 1
	}
	if !e.st.Map.InBounds(x, y) {
		e.log.Warn("scenario spawn out of bounds",
			zap.String("species", key), zap.Int32("x", x), zap.Int32("y", y))
		L.Push(lua.LNil)
		return 1
	}
	id := e.st.SpawnSpecies(sp, x, y)
	L.Push(lua.LNumber(id))
	return 1
}

// world.despawn(id)
func (e *Engine) luaDespawn(L *lua.LState) int {
	id := entityArg(L, 1)
	if e.st.Pool.Alive(id) {
		e.st.Registry.RemoveAll(id)
		e.st.Pool.Despawn(id)
	}
	return 0
}

// world.set_position(id, x, y)
func (e *Engine) luaSetPosition(L *lua.LState) int {
	id := entityArg(L, 1)
	x := int32(L.CheckInt(2))
	y := int32(L.CheckInt(3))
	if !e.st.Pool.Alive(id) || !e.st.Map.InBounds(x, y) {
		return 0
	}
	p, _ := e.st.Positions.Get(id)
	p.X, p.Y = x, y
	e.st.Positions.Set(id, p)
	return 0
}

// world.set_hunger(id, current, max)
func (e *Engine) luaSetHunger(L *lua.LState) int {
	id := entityArg(L, 1)
	if !e.st.Pool.Alive(id) {
		return 0
	}
	h, _ := e.st.Hungers.Get(id)
	h.Current = int32(L.CheckInt(2))
	h.Max = int32(L.CheckInt(3))
	e.st.Hungers.Set(id, h)
	return 0
}

// world.set_health(id, current, max)
func (e *Engine) luaSetHealth(L *lua.LState) int {
	id := entityArg(L, 1)
	if !e.st.Pool.Alive(id) {
		return 0
	}
	h, _ := e.st.Healths.Get(id)
	h.Current = int32(L.CheckInt(2))
	h.Max = int32(L.CheckInt(3))
	e.st.Healths.Set(id, h)
	return 0
}

// world.count() -> alive entity count
func (e *Engine) luaCount(L *lua.LState) int {
	L.Push(lua.LNumber(e.st.Pool.Count()))
	return 1
}

func entityArg(L *lua.LState, n int) ecs.Entity {
	return ecs.Entity(L.CheckInt64(n))
}
