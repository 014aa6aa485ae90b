package content

import (
	"cmp"
	"context"
	"regexp"
	"slices"
	"strconv"
)

var (
	yearPattern        = regexp.MustCompile(`\d{4}`)
	researchStatuses   = []string{StatusOngoing, StatusCompleted}
	researchCategories = []string{CategoryThesis, CategoryProject, CategoryExperiment, CategoryBootcamp, CategoryOther}
)

// Research returns every research project: ongoing projects first, then by
// the first year found in the date range, newest first.
func (r *Repository) Research(ctx context.Context) ([]ResearchProject, error) {
	items, err := r.ListByType(ctx, TypeResearch)
	if err != nil {
		return nil, err
	}
	out := make([]ResearchProject, len(items))
	for i, item := range items {
		out[i] = decodeResearch(item)
	}
	slices.SortStableFunc(out, func(a, b ResearchProject) int {
		aOngoing, bOngoing := a.Status == StatusOngoing, b.Status == StatusOngoing
		if aOngoing != bOngoing {
			if aOngoing {
				return -1
			}
			return 1
		}
		return cmp.Compare(b.StartYear(), a.StartYear())
	})
	return out, nil
}

// OngoingProjects returns the ongoing subset of Research.
func (r *Repository) OngoingProjects(ctx context.Context) ([]ResearchProject, error) {
	return r.filterResearch(ctx, func(p ResearchProject) bool { return p.Status == StatusOngoing })
}

// CompletedProjects returns the completed subset of Research.
func (r *Repository) CompletedProjects(ctx context.Context) ([]ResearchProject, error) {
	return r.filterResearch(ctx, func(p ResearchProject) bool { return p.Status == StatusCompleted })
}

// FeaturedProjects returns the featured subset of Research.
func (r *Repository) FeaturedProjects(ctx context.Context) ([]ResearchProject, error) {
	return r.filterResearch(ctx, func(p ResearchProject) bool { return p.Featured })
}

// ProjectBySlug returns the research project with slug, or nil.
func (r *Repository) ProjectBySlug(ctx context.Context, slug string) (*ResearchProject, error) {
	item, err := r.GetBySlug(ctx, TypeResearch, slug)
	if err != nil || item == nil {
		return nil, err
	}
	project := decodeResearch(*item)
	return &project, nil
}

// StartYear is the first four digit year in DateRange, or 0.
func (p ResearchProject) StartYear() int {
	match := yearPattern.FindString(p.DateRange)
	if match == "" {
		return 0
	}
	year, _ := strconv.Atoi(match)
	return year
}

func (r *Repository) filterResearch(ctx context.Context, keep func(ResearchProject) bool) ([]ResearchProject, error) {
	projects, err := r.Research(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(projects, func(p ResearchProject) bool { return !keep(p) }), nil
}

func decodeResearch(item Item) ResearchProject {
	meta := fields(item.Metadata)
	return ResearchProject{
		Item:        item,
		ShortTitle:  meta.textOr("shortTitle", item.Title),
		Institution: meta.text("institution"),
		Department:  meta.text("department"),
		DateRange:   meta.text("dateRange"),
		Status:      oneOf(meta.text("status"), StatusCompleted, researchStatuses...),
		Category:    oneOf(meta.text("category"), CategoryOther, researchCategories...),
		Description: meta.text("description"),
		Supervisors: meta.text("supervisors"),
		Featured:    meta.flag("featured"),
		Tags:        meta.list("tags"),
		Links:       meta.links("links"),
	}
}
