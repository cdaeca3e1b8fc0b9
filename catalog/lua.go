package catalog

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/anisan-cli/eprange/constant"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

var protoCache sync.Map

// compile returns the prototype of the script at path, compiling it on first use.
func compile(path string, contents []byte) (*lua.FunctionProto, error) {
	if cached, ok := protoCache.Load(path); ok {
		return cached.(*lua.FunctionProto), nil
	}

	chunk, err := parse.Parse(bytes.NewReader(contents), path)
	if err != nil {
		return nil, err
	}

	proto, err := lua.Compile(chunk, path)
	if err != nil {
		return nil, err
	}

	protoCache.Store(path, proto)
	return proto, nil
}

func decodeLua(path string, contents []byte) (*Series, error) {
	proto, err := compile(path, contents)
	if err != nil {
		return nil, err
	}

	state := lua.NewState()
	defer state.Close()

	state.Push(state.NewFunctionFromProto(proto))
	if err := state.PCall(0, lua.MultRet, nil); err != nil {
		return nil, err
	}

	fn := state.GetGlobal(constant.CatalogSeasonsFn)
	if fn.Type() != lua.LTFunction {
		return nil, fmt.Errorf("function %s is required but not defined", constant.CatalogSeasonsFn)
	}

	err = state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	})
	if err != nil {
		return nil, err
	}

	ret := state.Get(-1)
	state.Pop(1)

	table, ok := ret.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%s returned %s, expected %s", constant.CatalogSeasonsFn, ret.Type(), lua.LTTable)
	}

	series := &Series{Title: stringOf(state.GetGlobal(constant.CatalogTitleGlobal))}

	var errs []error
	forEachTable(table, func(t *lua.LTable) {
		season, err := seasonFromTable(t)
		if err != nil {
			errs = append(errs, err)
			return
		}
		series.Seasons = append(series.Seasons, season)
	})

	if len(errs) > 0 {
		return nil, errs[0]
	}

	return series, nil
}

func seasonFromTable(table *lua.LTable) (*Season, error) {
	number, ok := table.RawGetString("number").(lua.LNumber)
	if !ok {
		return nil, fmt.Errorf("season must have a number")
	}

	season := &Season{
		Number: int(number),
		Name:   getString(table, "name"),
	}

	if episodes, ok := table.RawGetString("episodes").(*lua.LTable); ok {
		forEachTable(episodes, func(t *lua.LTable) {
			season.Episodes = append(season.Episodes, &Episode{
				ID:      getString(t, "id"),
				Name:    getString(t, "name"),
				Checked: lua.LVAsBool(t.RawGetString("checked")),
			})
		})
	}

	return season, nil
}

// forEachTable visits the table values of the array part in order.
func forEachTable(table *lua.LTable, fn func(*lua.LTable)) {
	for i := 1; i <= table.Len(); i++ {
		if t, ok := table.RawGetInt(i).(*lua.LTable); ok {
			fn(t)
		}
	}
}

func getString(table *lua.LTable, key string) string {
	return stringOf(table.RawGetString(key))
}

// stringOf accepts strings and numbers, so `id = 3` and `id = "3"` read the same.
func stringOf(value lua.LValue) string {
	switch value.Type() {
	case lua.LTString, lua.LTNumber:
		return value.String()
	default:
		return ""
	}
}
