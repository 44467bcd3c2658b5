// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — событие симуляции. Time — время забега в момент события.
type Event struct {
	Type EventType
	Time float64
	Data interface{} // Полезная нагрузка, см. types.go
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
// Функции несравнимы, поэтому такую подписку нельзя снять через Unsubscribe.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher — синхронный диспетчер: Dispatch вызывает подписчиков сразу,
// в порядке подписки.
type Dispatcher struct {
	listeners map[EventType][]Listener
	all       []Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll — подписка на все типы событий (журналы, звук).
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.all = append(d.all, listener)
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = remove(d.listeners[eventType], listener)
}

// UnsubscribeAll снимает подписку, сделанную через SubscribeAll.
func (d *Dispatcher) UnsubscribeAll(listener Listener) {
	d.all = remove(d.all, listener)
}

func remove(listeners []Listener, listener Listener) []Listener {
	for i, l := range listeners {
		if l == listener {
			return append(listeners[:i:i], listeners[i+1:]...)
		}
	}
	return listeners
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
	for _, listener := range d.all {
		listener.OnEvent(event)
	}
}
