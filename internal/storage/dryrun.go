package storage

// Write is a recorded write of a DryRun store.
type Write struct {
	Path    string
	Content string
}

// DryRun reads through to another store and records writes instead of
// performing them.
type DryRun struct {
	source Store
	writes []Write
}

// NewDryRun creates a store that reads from source and never writes.
func NewDryRun(source Store) *DryRun {
	return &DryRun{source: source}
}

// ReadFile reads from the underlying store.
func (d *DryRun) ReadFile(path string) (string, error) {
	return d.source.ReadFile(path)
}

// WriteFile records the write.
func (d *DryRun) WriteFile(path, content string) error {
	d.writes = append(d.writes, Write{Path: path, Content: content})
	return nil
}

// Writes returns the recorded writes in order.
func (d *DryRun) Writes() []Write {
	return d.writes
}
