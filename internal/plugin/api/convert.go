package api

import (
	"fmt"
	"math"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/incsel/internal/engine/region"
)

// groupToTable converts a group to an array of {anchor=, active=} tables.
func groupToTable(L *lua.LState, g region.Group) *lua.LTable {
	tbl := L.CreateTable(len(g), 0)
	for i, r := range g {
		entry := L.CreateTable(0, 2)
		entry.RawSetString("anchor", lua.LNumber(r.Anchor))
		entry.RawSetString("active", lua.LNumber(r.Active))
		tbl.RawSetInt(i+1, entry)
	}
	return tbl
}

// tableToGroup reads an array of {anchor=, active=} tables. A missing
// active collapses the region to a caret at anchor.
func tableToGroup(tbl *lua.LTable) (region.Group, error) {
	n := tbl.Len()
	g := make(region.Group, 0, n)
	for i := 1; i <= n; i++ {
		entry, ok := tbl.RawGetInt(i).(*lua.LTable)
		if !ok {
			return nil, fmt.Errorf("region %d: expected table", i)
		}
		anchor, err := offsetField(entry, "anchor", i)
		if err != nil {
			return nil, err
		}
		active := anchor
		if entry.RawGetString("active") != lua.LNil {
			if active, err = offsetField(entry, "active", i); err != nil {
				return nil, err
			}
		}
		g = append(g, region.New(anchor, active))
	}
	return g, nil
}

func offsetField(entry *lua.LTable, field string, i int) (region.Offset, error) {
	num, ok := entry.RawGetString(field).(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("region %d: %s must be a number", i, field)
	}
	f := float64(num)
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("region %d: %s must be an integer", i, field)
	}
	if f < 0 {
		return 0, fmt.Errorf("region %d: %s must be non-negative", i, field)
	}
	return region.Offset(f), nil
}
