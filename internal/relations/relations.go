// Package relations computes the "related" lists of functions from category
// membership and see_also reference tags.
package relations

import (
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/wikigen/internal/category"
	"git.home.luguber.info/inful/wikigen/internal/function"
	"git.home.luguber.info/inful/wikigen/internal/logfields"
	"git.home.luguber.info/inful/wikigen/internal/record"
)

// KindCategory is the only reference kind that resolves to related entries.
const KindCategory = "category"

// Status tells whether a reference tag produced a related entry.
type Status int

const (
	Resolved Status = iota
	SkippedMalformed
	SkippedUnsupportedKind
	SkippedUnknownCategory
)

func (s Status) String() string {
	switch s {
	case Resolved:
		return "resolved"
	case SkippedMalformed:
		return "malformed"
	case SkippedUnsupportedKind:
		return "unsupported_kind"
	case SkippedUnknownCategory:
		return "unknown_category"
	}
	return "unknown"
}

// Resolution is the outcome of one see_also tag. Related is set only when
// Status is Resolved.
type Resolution struct {
	Tag     string
	Status  Status
	Related category.Related
}

// ResolveTag resolves a "kind:name" tag against idx.
func ResolveTag(tag string, idx *category.Index) Resolution {
	parts := strings.Split(tag, ":")
	if len(parts) != 2 {
		return Resolution{Tag: tag, Status: SkippedMalformed}
	}
	kind, name := parts[0], parts[1]
	if kind != KindCategory {
		return Resolution{Tag: tag, Status: SkippedUnsupportedKind}
	}
	members, ok := idx.Lookup(name)
	if !ok {
		return Resolution{Tag: tag, Status: SkippedUnknownCategory}
	}
	return Resolution{Tag: tag, Status: Resolved, Related: category.Related{Category: name, Members: members}}
}

// Skip is a tag of a function that did not resolve.
type Skip struct {
	Function   string
	Resolution Resolution
}

// Report summarises skipped tags over a Resolve run.
type Report struct {
	Skipped []Skip
}

// Resolve fills Related for every function: its own category first, then the
// see_also tags of shared, client and server in declaration order. Unresolved
// tags are left out and returned in the report.
func Resolve(functions []*function.Function, idx *category.Index) Report {
	var report Report
	for _, fn := range functions {
		fn.Related = fn.Related[:0]
		if fn.Category != "" {
			members, _ := idx.Lookup(fn.Category)
			fn.Related = append(fn.Related, category.Related{Category: fn.Category, Members: members})
		}
		for _, c := range record.Precedence {
			info, ok := fn.Variants.Lookup(c).Get()
			if !ok {
				continue
			}
			for _, tag := range info.SeeAlso {
				res := ResolveTag(tag, idx)
				if res.Status != Resolved {
					report.Skipped = append(report.Skipped, Skip{Function: fn.Name, Resolution: res})
					slog.Debug("Skipped see_also reference",
						logfields.Function(fn.Name), logfields.Tag(tag), logfields.Reason(res.Status.String()))
					continue
				}
				fn.Related = append(fn.Related, res.Related)
			}
		}
	}
	return report
}
