package world

import "fmt"

// World is the registry of rooms, keyed by room ID. Its key set is fixed
// once Build returns.
type World struct {
	rooms     map[string]*Room
	order     []string
	startRoom string
}

// Room returns the room with the given ID.
//
// Postcondition: Returns (room, true) if found, or (nil, false) otherwise.
func (w *World) Room(id string) (*Room, bool) {
	r, ok := w.rooms[id]
	return r, ok
}

// Rooms returns all rooms in the order they were added.
//
// Postcondition: Returns a non-nil slice.
func (w *World) Rooms() []*Room {
	out := make([]*Room, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.rooms[id])
	}
	return out
}

// StartRoom returns the room a new player starts in.
func (w *World) StartRoom() *Room {
	return w.rooms[w.startRoom]
}

// RoomCount returns the number of registered rooms.
func (w *World) RoomCount() int {
	return len(w.rooms)
}

// Validate checks that every exit leads to a registered room and that
// the start room exists.
//
// Postcondition: Returns nil if valid, or an error describing the first violation.
func (w *World) Validate() error {
	if _, ok := w.rooms[w.startRoom]; !ok {
		return fmt.Errorf("start room %q not found", w.startRoom)
	}
	for _, id := range w.order {
		room := w.rooms[id]
		for _, dir := range room.Exits() {
			target, _ := room.NextRoom(dir)
			if registered, ok := w.rooms[target.ID]; !ok || registered != target {
				return fmt.Errorf("room %q: exit %q targets unregistered room %q", id, dir, target.ID)
			}
		}
	}
	return nil
}

// OneWayExits lists exits whose target has no exit leading straight back,
// as "room/direction" in room order.
func (w *World) OneWayExits() []string {
	var out []string
	for _, id := range w.order {
		room := w.rooms[id]
		for _, dir := range room.Exits() {
			target, _ := room.NextRoom(dir)
			back, ok := target.NextRoom(dir.Opposite())
			if !ok || back != room {
				out = append(out, id+"/"+string(dir))
			}
		}
	}
	return out
}

// link is an exit recorded by ID during phase one.
type link struct {
	from string
	dir  Direction
	to   string
}

// Builder constructs a World in two phases. Phase one creates every room
// with AddRoom and records exits by ID with Link; phase two, Build,
// resolves the recorded IDs into room references. Rooms that point at
// each other are therefore always fully constructed before being linked.
type Builder struct {
	rooms map[string]*Room
	order []string
	links []link
	errs  []error
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{rooms: make(map[string]*Room)}
}

// AddRoom creates and registers a room. Errors are reported by Build.
//
// Precondition: id must be unique within the builder.
// Postcondition: Returns the new room, or nil if id was invalid.
func (b *Builder) AddRoom(id, name, description string, locked bool) *Room {
	if id == "" {
		b.errs = append(b.errs, fmt.Errorf("room ID must not be empty"))
		return nil
	}
	if _, exists := b.rooms[id]; exists {
		b.errs = append(b.errs, fmt.Errorf("duplicate room ID: %q", id))
		return nil
	}
	if name == "" {
		b.errs = append(b.errs, fmt.Errorf("room %q: name must not be empty", id))
	}
	r := NewRoom(id, name, description, locked)
	b.rooms[id] = r
	b.order = append(b.order, id)
	return r
}

// Link records a one-way exit from one room to another by ID.
func (b *Builder) Link(fromID string, dir Direction, toID string) {
	b.links = append(b.links, link{from: fromID, dir: dir, to: toID})
}

// Build resolves all recorded links and returns the finished World.
//
// Precondition: startID names a room added with AddRoom.
// Postcondition: Returns a validated World, or the first construction error.
func (b *Builder) Build(startID string) (*World, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	if len(b.rooms) == 0 {
		return nil, fmt.Errorf("world must contain at least one room")
	}
	for _, l := range b.links {
		from, ok := b.rooms[l.from]
		if !ok {
			return nil, fmt.Errorf("exit %q from unknown room %q", l.dir, l.from)
		}
		if !l.dir.IsCompass() {
			return nil, fmt.Errorf("room %q: %q is not a compass direction", l.from, l.dir)
		}
		to, ok := b.rooms[l.to]
		if !ok {
			return nil, fmt.Errorf("room %q: exit %q targets unknown room %q", l.from, l.dir, l.to)
		}
		from.SetExit(l.dir, to)
	}

	w := &World{
		rooms:     b.rooms,
		order:     b.order,
		startRoom: startID,
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}
