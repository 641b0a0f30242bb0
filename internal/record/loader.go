package record

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/wikigen/internal/foundation/errors"
)

// Loader decodes and validates records. A single Loader is reused for the
// whole build so validator metadata is cached across files.
type Loader struct {
	validate *validator.Validate
}

// NewLoader creates a Loader with the record schema rules registered.
func NewLoader() *Loader {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(yamlFieldName)
	v.RegisterStructValidation(validateCategoryNode, CategoryNode{})
	return &Loader{validate: v}
}

// LoadFunction reads one function record. At least one context must be
// present and no present context may be empty.
func (l *Loader) LoadFunction(path string) (*Variants, error) {
	var v Variants
	if err := l.decodeFile(path, &v, true); err != nil {
		return nil, err
	}
	if err := l.validateValue(path, &v); err != nil {
		return nil, err
	}
	if len(v.Populated()) == 0 {
		return nil, ferrors.ModelError("function record has no populated context").
			WithContext("file", path).Build()
	}
	for _, c := range Precedence {
		if info := v.Get(c); info != nil && info.IsEmpty() {
			return nil, ferrors.ModelError("function context is present but empty").
				WithContext("file", path).
				WithContext("context", string(c)).
				Build()
		}
	}
	return &v, nil
}

// LoadArticle reads one article record.
func (l *Loader) LoadArticle(path string) (*Article, error) {
	var a Article
	if err := l.decodeFile(path, &a, true); err != nil {
		return nil, err
	}
	if err := l.validateValue(path, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// LoadElement reads one element record.
func (l *Loader) LoadElement(path string) (*Element, error) {
	var e Element
	if err := l.decodeFile(path, &e, true); err != nil {
		return nil, err
	}
	if err := l.validateValue(path, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// LoadNavigation reads the navigation tree.
func (l *Loader) LoadNavigation(path string) ([]NavigationEntry, error) {
	var entries []NavigationEntry
	if err := l.decodeFile(path, &entries, false); err != nil {
		return nil, err
	}
	for i := range entries {
		if err := l.validateValue(path, &entries[i]); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// decodeFile decodes the YAML document at path into out. Strict decoding
// rejects keys the record type does not declare.
func (l *Loader) decodeFile(path string, out any, strict bool) error {
	// #nosec G304 -- record paths come from walking the configured input trees.
	data, err := os.ReadFile(path)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryReference, "record file cannot be read").
			Fatal().WithContext("file", path).Build()
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(strict)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "record is not valid YAML for its schema").
			Fatal().WithContext("file", path).Build()
	}
	return nil
}

func (l *Loader) validateValue(path string, v any) error {
	if err := l.validate.Struct(v); err != nil {
		return ferrors.WrapError(summarize(err), ferrors.CategoryValidation, "record failed schema validation").
			Fatal().WithContext("file", path).Build()
	}
	return nil
}

// summarize flattens validator output into one readable error.
func summarize(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
	}
	return errors.New(strings.Join(parts, "; "))
}

func validateCategoryNode(sl validator.StructLevel) {
	node, ok := sl.Current().Interface().(CategoryNode)
	if !ok {
		return
	}
	if node.Functions != nil && node.Functions.Type == "" {
		sl.ReportError(node.Functions.Type, "functions.type", "Type", "required", "")
	}
	if node.Articles != nil && node.Functions != nil {
		sl.ReportError(node.Functions, "functions", "Functions", "excluded_with", "articles")
	}
}
