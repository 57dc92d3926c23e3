package roster

// Roster is the ordered list of recipients for one session.
// Insertion order is display and generation order.
type Roster struct {
	items []Recipient
}

func New() *Roster {
	return &Roster{}
}

// Add appends r. Identifiers must be unique within the roster.
func (ro *Roster) Add(r Recipient) error {
	if r.Field1 == "" {
		return ErrField1Required
	}
	if r.ImagePath == "" {
		return ErrImageRequired
	}
	if ro.indexOf(r.ID) >= 0 {
		return ErrDuplicateID
	}
	ro.items = append(ro.items, r)
	return nil
}

// Remove deletes the recipient with the given identifier.
func (ro *Roster) Remove(id string) error {
	i := ro.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	ro.items = append(ro.items[:i], ro.items[i+1:]...)
	return nil
}

func (ro *Roster) Get(id string) (Recipient, bool) {
	i := ro.indexOf(id)
	if i < 0 {
		return Recipient{}, false
	}
	return ro.items[i], true
}

func (ro *Roster) Len() int {
	return len(ro.items)
}

// List returns a copy of the roster in insertion order.
func (ro *Roster) List() []Recipient {
	out := make([]Recipient, len(ro.items))
	copy(out, ro.items)
	return out
}

func (ro *Roster) indexOf(id string) int {
	for i, r := range ro.items {
		if r.ID == id {
			return i
		}
	}
	return -1
}
