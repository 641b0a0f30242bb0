// Package category expands the declarative category tree into output paths
// and a flat name -> members index.
package category

// Member is one navigable entry listed on a category page.
type Member struct {
	Title string
	Path  string
}

// Related links a function to the members of a category it belongs to or
// references.
type Related struct {
	Category string
	Members  []Member
}

// Index maps category names to their resolved members. Names share one flat
// namespace across the whole tree.
type Index struct {
	members map[string][]Member
	// replaced counts registrations that overwrote an existing name.
	replaced []string
}

// NewIndex creates an empty Index.
func NewIndex() *Index {
	return &Index{members: make(map[string][]Member)}
}

// InsertOrReplace registers members under name. When name is already
// registered the new members replace the old ones (last write wins) and
// InsertOrReplace reports true.
func (idx *Index) InsertOrReplace(name string, members []Member) (replaced bool) {
	if _, exists := idx.members[name]; exists {
		replaced = true
		idx.replaced = append(idx.replaced, name)
	}
	idx.members[name] = members
	return replaced
}

// Lookup returns the members registered under name.
func (idx *Index) Lookup(name string) ([]Member, bool) {
	m, ok := idx.members[name]
	return m, ok
}

// Len returns the number of distinct names.
func (idx *Index) Len() int { return len(idx.members) }

// Replaced lists names whose registration overwrote an earlier one, once per overwrite.
func (idx *Index) Replaced() []string {
	out := make([]string, len(idx.replaced))
	copy(out, idx.replaced)
	return out
}
