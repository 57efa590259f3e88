package prefs

// Store keeps the in-memory preferences together with where they persist.
// Callers mutate through Update and persist explicitly with Save.
type Store struct {
	path  string
	prefs Prefs
}

// Open loads preferences from path. Files written by an older schema are
// upgraded in place once, so keys added since keep their defaults on disk.
func Open(path string) (*Store, error) {
	p, upgrade, err := load(path)
	if err != nil {
		return nil, err
	}
	s := &Store{path: path, prefs: p}
	if upgrade {
		if err := s.Save(); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Path returns the configured path (empty means the default location).
func (s *Store) Path() string {
	return s.path
}

// Prefs returns a copy of the current preferences.
func (s *Store) Prefs() Prefs {
	return s.prefs
}

// Update applies fn to the in-memory preferences.
func (s *Store) Update(fn func(*Prefs)) {
	fn(&s.prefs)
}

// Save persists the in-memory preferences.
func (s *Store) Save() error {
	return Save(s.path, s.prefs)
}
