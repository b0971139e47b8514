package collection

// findEntry returns the first entry matching name under mode, or nil.
func findEntry(entries []*Entry, name string, mode MatchPath) *Entry {
	for _, e := range entries {
		if matches(e, name, mode) {
			return e
		}
	}
	return nil
}

func matches(e *Entry, name string, mode MatchPath) bool {
	if mode == Ignore {
		return baseName(e.name) == baseName(name)
	}
	return e.name == name
}
