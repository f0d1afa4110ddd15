package controller

import "fmt"

type EventKind int

const (
	EventSearch EventKind = iota
	EventEnterKey
	EventSave
	EventDelete
	EventEdit
	EventView
	EventLoad
)

var eventNames = map[EventKind]string{
	EventSearch:   "search",
	EventEnterKey: "enter",
	EventSave:     "save",
	EventDelete:   "delete",
	EventEdit:     "edit",
	EventView:     "view",
	EventLoad:     "load",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is one user interaction. Value is the city id for delete and edit, and the city name for view.
type Event struct {
	Kind  EventKind
	Value string
}

func Search() Event          { return Event{Kind: EventSearch} }
func EnterKey() Event        { return Event{Kind: EventEnterKey} }
func Save() Event            { return Event{Kind: EventSave} }
func Load() Event            { return Event{Kind: EventLoad} }
func Delete(id string) Event { return Event{Kind: EventDelete, Value: id} }
func Edit(id string) Event   { return Event{Kind: EventEdit, Value: id} }
func View(name string) Event { return Event{Kind: EventView, Value: name} }

// ListStatus is the lifecycle of the rendered city list.
type ListStatus int32

const (
	ListIdle ListStatus = iota
	ListLoading
	ListRendered
)

func (s ListStatus) String() string {
	switch s {
	case ListIdle:
		return "IDLE"
	case ListLoading:
		return "LOADING"
	case ListRendered:
		return "RENDERED"
	default:
		return "UNKNOWN"
	}
}
