// internal/event/types.go
package event

import "go-reverse-td/internal/types"

const (
	RunReset        EventType = "RunReset"        // Забег начат заново
	UnitSpawned     EventType = "UnitSpawned"     // Юнит отправлен
	SpawnRejected   EventType = "SpawnRejected"   // Запрос на отправку отклонён
	UnitEscaped     EventType = "UnitEscaped"     // Юнит дошёл до конца пути
	UnitDestroyed   EventType = "UnitDestroyed"   // Юнит уничтожен башнями
	ProjectileFired EventType = "ProjectileFired" // Башня выстрелила
	StatusMessage   EventType = "StatusMessage"   // Подсказка для игрока
	GameOver        EventType = "GameOver"        // Забег завершён
)

// UnitData: нагрузка UnitSpawned / UnitEscaped / UnitDestroyed / SpawnRejected.
type UnitData struct {
	ID     types.EntityID
	TypeID string
	Name   string
}

// FireData: нагрузка ProjectileFired.
type FireData struct {
	TowerID      types.EntityID
	ProjectileID types.EntityID
	TargetID     types.EntityID
}

// StatusData: нагрузка StatusMessage. Сообщение одноразовое: показать и забыть.
type StatusData struct {
	Text string
}

// GameOverData: нагрузка GameOver.
type GameOverData struct {
	Victory bool
	Escaped int
	Message string
}

// ResetData: нагрузка RunReset.
type ResetData struct {
	RunID      string
	Difficulty string
}
