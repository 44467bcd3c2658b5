// internal/system/utils.go
package system

import (
	"go-reverse-td/internal/component"
	"go-reverse-td/internal/event"
	"go-reverse-td/internal/types"
)

func unitData(id types.EntityID, u *component.Unit) event.UnitData {
	return event.UnitData{ID: id, TypeID: u.TypeID, Name: u.Name}
}
