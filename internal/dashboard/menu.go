package dashboard

// Entry is one selectable item of an assign-style dropdown menu.
type Entry struct {
	Value string
	Label string
}

// Menu models a chip-style dropdown input: a visible label, a hidden
// value field and the menu of selectable entries. Invariant: Value and
// Label always mirror the selected entry, or are both empty when no
// entries remain.
type Menu struct {
	Entries []Entry
	Value   string
	Label   string
}

func (m Menu) Empty() bool {
	return len(m.Entries) == 0
}

// Selected returns the entry matching the hidden value.
func (m Menu) Selected() (Entry, bool) {
	for _, e := range m.Entries {
		if e.Value == m.Value {
			return e, true
		}
	}
	return Entry{}, false
}

// Select makes the entry with the given value the sole active selection.
// Unknown values leave the menu untouched.
func (m *Menu) Select(value string) bool {
	for _, e := range m.Entries {
		if e.Value == value {
			m.Value = e.Value
			m.Label = e.Label
			return true
		}
	}
	return false
}

// Add appends an entry. A previously empty menu adopts the new entry as
// its selection; otherwise the current selection stands. Duplicate
// values are ignored.
func (m *Menu) Add(e Entry) {
	for _, have := range m.Entries {
		if have.Value == e.Value {
			return
		}
	}
	wasEmpty := len(m.Entries) == 0
	m.Entries = append(m.Entries, e)
	if wasEmpty {
		m.Value = e.Value
		m.Label = e.Label
	}
}

// Remove drops the entry with the given value. If it was the active
// selection, the first remaining entry is promoted; with no entries left
// the menu resets to the empty placeholder selection.
func (m *Menu) Remove(value string) bool {
	idx := -1
	for i, e := range m.Entries {
		if e.Value == value {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	m.Entries = append(m.Entries[:idx], m.Entries[idx+1:]...)
	if m.Value != value {
		return true
	}
	if len(m.Entries) == 0 {
		m.Value = ""
		m.Label = ""
		return true
	}
	m.Value = m.Entries[0].Value
	m.Label = m.Entries[0].Label
	return true
}
