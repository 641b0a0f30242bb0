package builder

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"git.home.luguber.info/inful/wikigen/internal/render"
)

// BuildOutcome is the final result of a build.
type BuildOutcome string

const (
	OutcomeSuccess  BuildOutcome = "success"
	OutcomeFailed   BuildOutcome = "failed"
	OutcomeCanceled BuildOutcome = "canceled"
)

// PageKind classifies written pages.
type PageKind string

const (
	PageArticle  PageKind = "article"
	PageFunction PageKind = "function"
	PageElement  PageKind = "element"
	PageCategory PageKind = "category"
	PageNotFound PageKind = "not_found"
)

// Omission reasons.
const (
	OmissionDuplicateCategory  = "duplicate_category"
	OmissionDuplicateImageName = "duplicate_image_name"
)

// Omission is a reference that was dropped or overwritten without failing the build.
type Omission struct {
	Reason  string
	Subject string
	Detail  string
}

// BuildReport summarises one build.
type BuildReport struct {
	BuildID        string
	Start          time.Time
	End            time.Time
	StageDurations map[string]time.Duration
	Functions      int
	Articles       int
	Elements       int
	Categories     int
	Pages          map[PageKind]int
	Omissions      []Omission
	Templates      map[string]render.Source
	Outcome        BuildOutcome
	Err            error
}

func newBuildReport(id string, start time.Time) *BuildReport {
	return &BuildReport{
		BuildID:        id,
		Start:          start,
		StageDurations: make(map[string]time.Duration),
		Pages:          make(map[PageKind]int),
	}
}

// TotalPages returns the number of pages written.
func (r *BuildReport) TotalPages() int {
	n := 0
	for _, c := range r.Pages {
		n += c
	}
	return n
}

// Duration is the wall time of the build.
func (r *BuildReport) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

func (r *BuildReport) addOmission(reason, subject, detail string) {
	r.Omissions = append(r.Omissions, Omission{Reason: reason, Subject: subject, Detail: detail})
}

// OmissionCounts groups omissions by reason.
func (r *BuildReport) OmissionCounts() map[string]int {
	out := make(map[string]int)
	for _, o := range r.Omissions {
		out[o.Reason]++
	}
	return out
}

func (r *BuildReport) finish(end time.Time, err error, canceled bool) {
	r.End = end
	r.Err = err
	switch {
	case canceled:
		r.Outcome = OutcomeCanceled
	case err != nil:
		r.Outcome = OutcomeFailed
	default:
		r.Outcome = OutcomeSuccess
	}
}

// Summary renders a one-line human readable summary.
func (r *BuildReport) Summary() string {
	kinds := make([]string, 0, len(r.Pages))
	for k := range r.Pages {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, fmt.Sprintf("%s=%d", k, r.Pages[PageKind(k)]))
	}
	return fmt.Sprintf("outcome=%s pages=%d [%s] functions=%d categories=%d omissions=%d duration=%s",
		r.Outcome, r.TotalPages(), strings.Join(parts, " "), r.Functions, r.Categories,
		len(r.Omissions), r.Duration().Round(time.Millisecond))
}
