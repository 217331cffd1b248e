package properties

// Room is a catalog entry. Instances are package-level constants; nothing
// creates rooms at runtime.
type Room struct {
	ID           string
	Name         string
	JapaneseName string
	Guests       int
	PrivateOnsen bool
	BasePrice    int // typical per-person price, informational only
}

func (r Room) RoomID() string        { return r.ID }
func (r Room) DisplayName() string   { return r.Name }
func (r Room) MaxGuests() int        { return r.Guests }
func (r Room) HasPrivateOnsen() bool { return r.PrivateOnsen }
