package scene

import "image/color"

// Entity palette, matching the cast of the starting scene.
var (
	PlayerColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	EnemyColor  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	ItemColor   = color.RGBA{R: 128, G: 0, B: 128, A: 255}
)

// Entity is anything drawn above the map: the player, monsters, items.
// HP is not kept within [0, MaxHP] here; readers clamp as needed. MaxHP of
// zero marks an entity that carries no health.
type Entity struct {
	Pos   Pos
	Glyph rune
	Color color.RGBA
	HP    int
	MaxHP int
}

// Handle identifies an entity inside a Roster. It is the entity's insertion
// index, which stays valid only while the roster is append-only. Removing or
// reordering entities would silently repoint existing handles.
type Handle int

// Roster is the ordered list of live entities. Entities render in roster
// order, so later entries paint over earlier ones.
//
// A Roster is not safe for concurrent use. Callers mutate it between frames
// and never while a frame is being rendered.
type Roster struct {
	entities []Entity
}

// NewRoster returns an empty roster.
func NewRoster() *Roster {
	return &Roster{}
}

// Add appends e and returns its handle.
func (r *Roster) Add(e Entity) Handle {
	r.entities = append(r.entities, e)
	return Handle(len(r.entities) - 1)
}

// Get returns a pointer to the entity behind h for in-place mutation.
// The pointer is invalidated by the next Add.
func (r *Roster) Get(h Handle) (*Entity, bool) {
	if h < 0 || int(h) >= len(r.entities) {
		return nil, false
	}
	return &r.entities[h], true
}

// Entities returns the roster contents in order. The slice aliases the
// roster's storage and must be treated as read-only.
func (r *Roster) Entities() []Entity {
	return r.entities
}

// Len returns the number of entities.
func (r *Roster) Len() int {
	return len(r.entities)
}

// Populate adds the starting cast to r and returns the player's handle.
func Populate(r *Roster) Handle {
	r.Add(Entity{Pos: Pos{Row: 6, Col: 9}, Glyph: 'g', Color: EnemyColor, HP: 1, MaxHP: 1})
	r.Add(Entity{Pos: Pos{Row: 4, Col: 2}, Glyph: 'g', Color: EnemyColor, HP: 1, MaxHP: 1})
	r.Add(Entity{Pos: Pos{Row: 5, Col: 7}, Glyph: '%', Color: ItemColor})
	r.Add(Entity{Pos: Pos{Row: 8, Col: 4}, Glyph: '%', Color: ItemColor})
	return r.Add(Entity{Pos: Pos{Row: 3, Col: 5}, Glyph: '@', Color: PlayerColor, HP: 3, MaxHP: 5})
}
