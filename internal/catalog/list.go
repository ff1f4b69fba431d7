package catalog

// ListView is the read-only surface of a named video list. Mutation goes
// through the Store so membership and the master video map stay consistent.
type ListView interface {
	Name() string
	Len() int
	// At returns the i-th video of the list in insertion order.
	At(i int) (Video, bool)
	Contains(id string) bool
	// Videos returns a copy of the list contents in insertion order.
	Videos() []Video
	// Changeable reports whether the list accepts user edits. The two
	// system lists are managed by the program itself.
	Changeable() bool
}

type videoList struct {
	name       string
	changeable bool
	items      []*Video
}

func (l *videoList) Name() string     { return l.name }
func (l *videoList) Len() int         { return len(l.items) }
func (l *videoList) Changeable() bool { return l.changeable }

func (l *videoList) At(i int) (Video, bool) {
	if i < 0 || i >= len(l.items) {
		return Video{}, false
	}
	return *l.items[i], true
}

func (l *videoList) Contains(id string) bool {
	for _, v := range l.items {
		if v.ID == id {
			return true
		}
	}
	return false
}

func (l *videoList) Videos() []Video {
	out := make([]Video, len(l.items))
	for i, v := range l.items {
		out[i] = *v
	}
	return out
}

// add appends v unless the list already references its id.
func (l *videoList) add(v *Video) bool {
	if l.Contains(v.ID) {
		return false
	}
	l.items = append(l.items, v)
	return true
}

// remove drops the reference to id, reporting whether it was present.
func (l *videoList) remove(id string) bool {
	for i, v := range l.items {
		if v.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}
