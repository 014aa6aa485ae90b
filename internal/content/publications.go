package content

import (
	"cmp"
	"context"
	"slices"
)

var (
	publicationTypes = []string{
		PublicationJournal, PublicationPreprint, PublicationThesis,
		PublicationReport, PublicationBook, PublicationConference,
	}
	publicationStatuses = []string{
		PublicationPublished, PublicationInPrep, PublicationPreprinted, PublicationAccepted,
	}
	talkKinds = []string{TalkKeynote, TalkPresentation, TalkWorkshop, TalkPanel, TalkInvited}
)

// Publications returns every publication, newest year first. Publications
// without a year count as year 0.
func (r *Repository) Publications(ctx context.Context) ([]Publication, error) {
	items, err := r.ListByType(ctx, TypePublications)
	if err != nil {
		return nil, err
	}
	out := make([]Publication, len(items))
	for i, item := range items {
		out[i] = decodePublication(item)
	}
	sortByYearDesc(out, func(p Publication) int { return p.Year })
	return out, nil
}

// RecentPublications returns the first n publications. n <= 0 uses the
// configured default.
func (r *Repository) RecentPublications(ctx context.Context, n int) ([]Publication, error) {
	if n <= 0 {
		n = r.recentPublications
	}
	pubs, err := r.Publications(ctx)
	if err != nil {
		return nil, err
	}
	return pubs[:min(n, len(pubs))], nil
}

// Talks returns every talk, newest year first.
func (r *Repository) Talks(ctx context.Context) ([]Talk, error) {
	items, err := r.ListByType(ctx, TypeTalks)
	if err != nil {
		return nil, err
	}
	out := make([]Talk, len(items))
	for i, item := range items {
		out[i] = decodeTalk(item)
	}
	sortByYearDesc(out, func(t Talk) int { return t.Year })
	return out, nil
}

// Posters returns every poster, newest year first.
func (r *Repository) Posters(ctx context.Context) ([]Poster, error) {
	items, err := r.ListByType(ctx, TypePosters)
	if err != nil {
		return nil, err
	}
	out := make([]Poster, len(items))
	for i, item := range items {
		out[i] = decodePoster(item)
	}
	sortByYearDesc(out, func(p Poster) int { return p.Year })
	return out, nil
}

// PublicationCounts totals publications, talks and posters.
func (r *Repository) PublicationCounts(ctx context.Context) (PublicationCounts, error) {
	var counts PublicationCounts
	for _, target := range []struct {
		contentType string
		count       *int
	}{
		{TypePublications, &counts.Publications},
		{TypeTalks, &counts.Talks},
		{TypePosters, &counts.Posters},
	} {
		items, err := r.ListByType(ctx, target.contentType)
		if err != nil {
			return PublicationCounts{}, err
		}
		*target.count = len(items)
	}
	counts.Total = counts.Publications + counts.Talks + counts.Posters
	return counts, nil
}

func sortByYearDesc[T any](items []T, year func(T) int) {
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(year(b), year(a))
	})
}

func decodePublication(item Item) Publication {
	meta := fields(item.Metadata)
	year, _ := meta.number("year")
	return Publication{
		Item:     item,
		Type:     oneOf(meta.text("type"), PublicationJournal, publicationTypes...),
		Authors:  meta.text("authors"),
		Venue:    meta.text("venue"),
		Year:     year,
		Status:   oneOf(meta.text("status"), PublicationPublished, publicationStatuses...),
		DOI:      meta.text("doi"),
		URL:      meta.text("url"),
		Abstract: meta.text("abstract"),
	}
}

func decodeTalk(item Item) Talk {
	meta := fields(item.Metadata)
	date := meta.text("date")
	return Talk{
		Item:        item,
		Event:       meta.text("event"),
		Location:    meta.text("location"),
		Date:        date,
		Year:        yearOf(meta, date),
		Kind:        oneOf(meta.text("type"), "", talkKinds...),
		URL:         meta.text("url"),
		Description: meta.text("description"),
	}
}

func decodePoster(item Item) Poster {
	meta := fields(item.Metadata)
	date := meta.text("date")
	return Poster{
		Item:      item,
		Event:     meta.text("event"),
		Location:  meta.text("location"),
		Date:      date,
		Year:      yearOf(meta, date),
		CoAuthors: meta.text("coAuthors"),
		URL:       meta.text("url"),
	}
}

// yearOf reads the year field, falling back to the year of date.
func yearOf(meta fields, date string) int {
	if year, ok := meta.number("year"); ok {
		return year
	}
	if parsed, ok := parseDate(date); ok {
		return parsed.Year()
	}
	return 0
}
