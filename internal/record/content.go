package record

// Article is a narrative page. Content points at a markup file resolved
// relative to the record (or the repository root when it starts with "/").
type Article struct {
	Title   string `yaml:"title" validate:"required"`
	Content string `yaml:"content" validate:"required"`
}

// Element describes a scripting element type.
type Element struct {
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description" validate:"required"`
}

// NavigationEntry is one item of the site navigation. An entry is a leaf
// pointing at an article, a group with Subitems, or a category page.
type NavigationEntry struct {
	Name     string            `yaml:"name,omitempty"`
	PathHTML string            `yaml:"path_html,omitempty" validate:"required_with=Category"`
	Article  string            `yaml:"article,omitempty"`
	Subitems []NavigationEntry `yaml:"subitems,omitempty" validate:"dive"`
	Category *CategoryNode     `yaml:"category,omitempty"`
}

// CategoryNode is a node of the declarative category tree.
type CategoryNode struct {
	Name          string         `yaml:"name" validate:"required"`
	Subcategories []CategoryNode `yaml:"subcategories,omitempty" validate:"dive"`
	Articles      *Selector      `yaml:"articles,omitempty"`
	Functions     *Selector      `yaml:"functions,omitempty"`
}

// Selector picks category members by source folder and, for functions, by
// dominant context.
type Selector struct {
	Path string  `yaml:"path" validate:"required"`
	Type Context `yaml:"type,omitempty" validate:"omitempty,oneof=shared client server"`
}
