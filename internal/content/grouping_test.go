package content

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestGroupByKeepsFirstAppearanceOrder(t *testing.T) {
	groups := GroupBy([]string{"b1", "a1", "b2", "c1", "a2"}, func(s string) byte { return s[0] })

	want := []Group[byte, string]{
		{Key: 'b', Items: []string{"b1", "b2"}},
		{Key: 'a', Items: []string{"a1", "a2"}},
		{Key: 'c', Items: []string{"c1"}},
	}
	if diff := cmp.Diff(want, groups); diff != "" {
		t.Fatalf("unexpected groups (-want +got):\n%s", diff)
	}
}

func TestPublicationsByYear(t *testing.T) {
	pubs := []Publication{
		{Item: Item{Slug: "old"}, Year: 2019},
		{Item: Item{Slug: "new-a"}, Year: 2023},
		{Item: Item{Slug: "undated"}},
		{Item: Item{Slug: "new-b"}, Year: 2023},
	}
	groups := PublicationsByYear(pubs)

	var years []int
	var slugs [][]string
	for _, group := range groups {
		years = append(years, group.Key)
		slugs = append(slugs, slugsOf(group.Items, pubSlug))
	}
	if diff := cmp.Diff([]int{2023, 2019, 0}, years); diff != "" {
		t.Fatalf("unexpected years (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]string{{"new-a", "new-b"}, {"old"}, {"undated"}}, slugs); diff != "" {
		t.Fatalf("unexpected grouping (-want +got):\n%s", diff)
	}
}

func TestPostsByYear(t *testing.T) {
	posts := []BlogPost{
		{Item: Item{Slug: "june"}, Published: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{Item: Item{Slug: "older"}, Published: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Item: Item{Slug: "undated"}},
	}
	groups := PostsByYear(posts)
	if len(groups) != 3 || groups[0].Key != 2024 || groups[1].Key != 2022 || groups[2].Key != 0 {
		t.Fatalf("unexpected groups %+v", groups)
	}
}

func TestResearchByStatus(t *testing.T) {
	projects := []ResearchProject{
		{Item: Item{Slug: "done"}, Status: StatusCompleted},
		{Item: Item{Slug: "live"}, Status: StatusOngoing},
		{Item: Item{Slug: "done-too"}, Status: StatusCompleted},
	}
	groups := ResearchByStatus(projects)
	if len(groups) != 2 || groups[0].Key != StatusOngoing || groups[1].Key != StatusCompleted {
		t.Fatalf("unexpected groups %+v", groups)
	}
	if diff := cmp.Diff([]string{"done", "done-too"}, slugsOf(groups[1].Items, projectSlug)); diff != "" {
		t.Fatalf("unexpected completed group (-want +got):\n%s", diff)
	}
}

func TestTalksAndPostersByYear(t *testing.T) {
	talks := TalksByYear([]Talk{{Year: 2020}, {Year: 2024}})
	posters := PostersByYear([]Poster{{Year: 2021}, {Year: 2021}})
	if talks[0].Key != 2024 || len(posters) != 1 || len(posters[0].Items) != 2 {
		t.Fatalf("unexpected groups %+v %+v", talks, posters)
	}
}
