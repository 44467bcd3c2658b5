// internal/component/economy.go
package component

// Economy: очки командования, которые тратятся на отправку юнитов.
type Economy struct {
	Points float64
	Regen  float64 // в секунду
	Cap    float64
}

// Regenerate прибавляет Regen*dt, не выходя за Cap.
func (e *Economy) Regenerate(dt float64) {
	e.Points = min(e.Cap, e.Points+e.Regen*dt)
}

// CanAfford проверяет, хватает ли очков.
func (e *Economy) CanAfford(cost float64) bool {
	return e.Points >= cost
}

// Spend списывает cost, если очков хватает.
func (e *Economy) Spend(cost float64) bool {
	if !e.CanAfford(cost) {
		return false
	}
	e.Points -= cost
	return true
}
