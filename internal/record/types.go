// Package record defines the on-disk shape of wiki definition records and
// loads them: YAML decoding, schema validation and discovery of record files.
//
// Records are kept exactly as authored. Derived models (names, syntaxes,
// resolved examples) are built by the function and category packages.
package record

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/wikigen/internal/foundation"
)

// Context identifies an execution environment a function definition may specialize for.
type Context string

const (
	Shared Context = "shared"
	Client Context = "client"
	Server Context = "server"
)

// Precedence is the fixed lookup order for "first populated context" decisions.
var Precedence = []Context{Shared, Client, Server}

// Sides are the contexts a split syntax is rendered for.
var Sides = []Context{Client, Server}

// Valid reports whether c is one of the known context tags.
func (c Context) Valid() bool {
	return c == Shared || c == Client || c == Server
}

// Pretty returns the human-readable context label used in page headings.
func (c Context) Pretty() string {
	switch c {
	case Shared:
		return "Shared"
	case Client:
		return "Client-side"
	case Server:
		return "Server-side"
	}
	return string(c)
}

// Variants holds the per-context definitions of one function record.
type Variants struct {
	Shared *ContextInfo `yaml:"shared,omitempty"`
	Client *ContextInfo `yaml:"client,omitempty"`
	Server *ContextInfo `yaml:"server,omitempty"`
}

// Get returns the raw definition for c, which may be nil.
func (v *Variants) Get(c Context) *ContextInfo {
	switch c {
	case Shared:
		return v.Shared
	case Client:
		return v.Client
	case Server:
		return v.Server
	}
	return nil
}

// Lookup returns the definition for c when it is present and populated.
func (v *Variants) Lookup(c Context) foundation.Option[*ContextInfo] {
	if info := v.Get(c); info != nil && !info.IsEmpty() {
		return foundation.Some(info)
	}
	return foundation.None[*ContextInfo]()
}

// Dominant returns the first populated context in Precedence order.
func (v *Variants) Dominant() foundation.Option[Context] {
	for _, c := range Precedence {
		if v.Lookup(c).IsSome() {
			return foundation.Some(c)
		}
	}
	return foundation.None[Context]()
}

// Populated lists the populated contexts in Precedence order.
func (v *Variants) Populated() []Context {
	out := make([]Context, 0, len(Precedence))
	for _, c := range Precedence {
		if v.Lookup(c).IsSome() {
			out = append(out, c)
		}
	}
	return out
}

// ContextInfo is one context's definition of a function.
type ContextInfo struct {
	Name             string         `yaml:"name,omitempty"`
	Description      string         `yaml:"description,omitempty"`
	Parameters       []Parameter    `yaml:"parameters,omitempty" validate:"dive"`
	Returns          *Returns       `yaml:"returns,omitempty"`
	Examples         []Example      `yaml:"examples,omitempty" validate:"dive"`
	Issues           []Issue        `yaml:"issues,omitempty" validate:"dive"`
	Notes            []string       `yaml:"notes,omitempty"`
	PreviewImages    []PreviewImage `yaml:"preview_images,omitempty" validate:"dive"`
	IgnoreParameters []string       `yaml:"ignore_parameters,omitempty" validate:"dive,required"`
	Disabled         *Disabled      `yaml:"disabled,omitempty"`
	SeeAlso          []string       `yaml:"see_also,omitempty"`
}

// IsEmpty reports whether no field of the definition is set.
func (ci *ContextInfo) IsEmpty() bool {
	return ci.Name == "" &&
		ci.Description == "" &&
		len(ci.Parameters) == 0 &&
		ci.Returns == nil &&
		len(ci.Examples) == 0 &&
		len(ci.Issues) == 0 &&
		len(ci.Notes) == 0 &&
		len(ci.PreviewImages) == 0 &&
		len(ci.IgnoreParameters) == 0 &&
		ci.Disabled == nil &&
		len(ci.SeeAlso) == 0
}

// Parameter is one declared function argument.
type Parameter struct {
	Name        string `yaml:"name" validate:"required"`
	Type        string `yaml:"type" validate:"required"`
	Description string `yaml:"description,omitempty"`
	// Default keeps whatever scalar or structure the author wrote.
	Default any `yaml:"default,omitempty"`
}

// Returns describes a function's return values.
type Returns struct {
	Description string        `yaml:"description,omitempty"`
	Values      []ReturnValue `yaml:"values" validate:"dive"`
}

// ReturnValue is one returned value.
type ReturnValue struct {
	Type        string `yaml:"type" validate:"required"`
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Example references a code sample file.
type Example struct {
	Path        string `yaml:"path" validate:"required"`
	Description string `yaml:"description,omitempty"`
}

// Issue references a known problem with the function.
type Issue struct {
	ID          int    `yaml:"id,omitempty"`
	Description string `yaml:"description" validate:"required"`
}

// PreviewImage references an image illustrating the function.
type PreviewImage struct {
	Path        string `yaml:"path" validate:"required"`
	Description string `yaml:"description,omitempty"`
}

// Disabled marks a function as unavailable. Authors write either a boolean or
// a message string; a message implies disabled.
type Disabled struct {
	Disabled bool
	Message  string
}

// UnmarshalYAML accepts `disabled: true` and `disabled: "reason"`.
func (d *Disabled) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: disabled must be a boolean or a message", node.Line)
	}
	if node.Tag == "!!bool" {
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		*d = Disabled{Disabled: b}
		return nil
	}
	msg := strings.TrimSpace(node.Value)
	*d = Disabled{Disabled: msg != "", Message: msg}
	return nil
}

// MarshalYAML writes the compact form back.
func (d Disabled) MarshalYAML() (any, error) {
	if d.Message != "" {
		return d.Message, nil
	}
	return d.Disabled, nil
}
