// internal/defs/spawn_tables.go
package defs

// SpawnEntry: одна запись таблицы выбора юнитов для бота.
// Weight: относительный шанс выбора.
type SpawnEntry struct {
	UnitID string `json:"unit_id"`
	Weight int    `json:"weight"`
}

// SpawnTable описывает распределение юнитов для стратегии бота.
type SpawnTable struct {
	Strategy string       `json:"strategy"`
	Entries  []SpawnEntry `json:"entries"`
}
