package content

import (
	"cmp"
	"slices"
)

// Group is one partition of a collection. Items keep their input order.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// GroupBy partitions items by key. Groups appear in the order their first
// item appears.
func GroupBy[K comparable, T any](items []T, key func(T) K) []Group[K, T] {
	index := map[K]int{}
	var groups []Group[K, T]
	for _, item := range items {
		k := key(item)
		pos, ok := index[k]
		if !ok {
			pos = len(groups)
			index[k] = pos
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[pos].Items = append(groups[pos].Items, item)
	}
	return groups
}

// GroupByYear partitions items by year, newest year first.
func GroupByYear[T any](items []T, year func(T) int) []Group[int, T] {
	groups := GroupBy(items, year)
	slices.SortStableFunc(groups, func(a, b Group[int, T]) int {
		return cmp.Compare(b.Key, a.Key)
	})
	return groups
}

// GroupByStatus partitions items by status. Statuses listed in order come
// first in that order; any others follow in order of appearance.
func GroupByStatus[T any](items []T, status func(T) string, order ...string) []Group[string, T] {
	groups := GroupBy(items, status)
	rank := func(key string) int {
		if i := slices.Index(order, key); i >= 0 {
			return i
		}
		return len(order)
	}
	slices.SortStableFunc(groups, func(a, b Group[string, T]) int {
		return cmp.Compare(rank(a.Key), rank(b.Key))
	})
	return groups
}

// PostsByYear groups posts by publication year. Undated posts fall in year 0.
func PostsByYear(posts []BlogPost) []Group[int, BlogPost] {
	return GroupByYear(posts, func(p BlogPost) int {
		if p.Published.IsZero() {
			return 0
		}
		return p.Published.Year()
	})
}

// PublicationsByYear groups publications by year.
func PublicationsByYear(pubs []Publication) []Group[int, Publication] {
	return GroupByYear(pubs, func(p Publication) int { return p.Year })
}

// TalksByYear groups talks by year.
func TalksByYear(talks []Talk) []Group[int, Talk] {
	return GroupByYear(talks, func(t Talk) int { return t.Year })
}

// PostersByYear groups posters by year.
func PostersByYear(posters []Poster) []Group[int, Poster] {
	return GroupByYear(posters, func(p Poster) int { return p.Year })
}

// ResearchByStatus groups projects into ongoing then completed.
func ResearchByStatus(projects []ResearchProject) []Group[string, ResearchProject] {
	return GroupByStatus(projects, func(p ResearchProject) string { return p.Status }, StatusOngoing, StatusCompleted)
}
