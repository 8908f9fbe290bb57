package store

// Option configures the store at open time.
type Option func(*Store)

// WithDataDir sets the directory the store file lives in.
func WithDataDir(dir string) Option {
	return func(s *Store) {
		s.dataDir = dir
	}
}

// WithFileName sets the name of the store file inside the data directory.
func WithFileName(name string) Option {
	return func(s *Store) {
		s.fileName = name
	}
}
