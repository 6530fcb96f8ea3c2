package core

import "sync"

// EventContext carries the data of a fired event.
type EventContext struct {
	// Source is the file or component the event refers to.
	Source string
	Data   interface{}
	Err    error
}

// System event codes. Callers may define their own codes above MAX_EVENT_CODE.
type SystemEventCode int

const (
	// A scene file was (re)loaded.
	/* Context usage:
	 * Source = scene path, Data = the loaded scene
	 */
	EVENT_CODE_SCENE_LOADED SystemEventCode = 0x01

	// A scene was evaluated.
	/* Context usage:
	 * Source = scene path, Data = the evaluation report
	 */
	EVENT_CODE_SCENE_EVALUATED SystemEventCode = 0x02

	// Loading or evaluating a scene failed.
	/* Context usage:
	 * Source = scene path, Err = the failure
	 */
	EVENT_CODE_SCENE_FAILED SystemEventCode = 0x03

	MAX_EVENT_CODE SystemEventCode = 0xFF
)

// Should return true if handled.
type FnOnEvent func(code SystemEventCode, sender interface{}, listener interface{}, data EventContext) bool

type registeredEvent struct {
	listener interface{}
	callback FnOnEvent
}

// EventBus dispatches events to listeners registered per code. It is safe
// for concurrent use; callbacks run on the firing goroutine.
type EventBus struct {
	mu         sync.RWMutex
	registered map[SystemEventCode][]*registeredEvent
}

func NewEventBus() *EventBus {
	return &EventBus{registered: make(map[SystemEventCode][]*registeredEvent)}
}

/**
 * Register to listen for when events are sent with the provided code. A
 * listener may only be registered once per code; a duplicate returns false.
 * @param code The event code to listen for.
 * @param listener A listener instance, used to identify the registration. Can be nil.
 * @param onEvent The callback invoked when the event code is fired.
 * @returns true if the event is successfully registered; otherwise false.
 */
func (b *EventBus) Register(code SystemEventCode, listener interface{}, onEvent FnOnEvent) bool {
	if onEvent == nil {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, e := range b.registered[code] {
		if e.listener == listener {
			LogWarn("event code %d already has this listener registered", code)
			return false
		}
	}
	b.registered[code] = append(b.registered[code], &registeredEvent{listener: listener, callback: onEvent})
	return true
}

/**
 * Unregister from listening for when events are sent with the provided code.
 * @returns true if a registration was removed; otherwise false.
 */
func (b *EventBus) Unregister(code SystemEventCode, listener interface{}) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	events := b.registered[code]
	for i, e := range events {
		if e.listener == listener {
			b.registered[code] = append(events[:i:i], events[i+1:]...)
			return true
		}
	}
	return false
}

/**
 * Fires an event to listeners of the given code. If an event handler returns
 * true, the event is considered handled and is not passed on to any more listeners.
 * @param code The event code to fire.
 * @param sender The sender. Can be nil.
 * @param data The event data.
 * @returns true if handled, otherwise false.
 */
func (b *EventBus) Fire(code SystemEventCode, sender interface{}, data EventContext) bool {
	b.mu.RLock()
	events := append([]*registeredEvent(nil), b.registered[code]...)
	b.mu.RUnlock()

	for _, e := range events {
		if e.callback(code, sender, e.listener, data) {
			return true
		}
	}
	return false
}
