package content

import internal "github.com/goliatone/go-portfolio/internal/content"

type (
	Item              = internal.Item
	Link              = internal.Link
	Affiliation       = internal.Affiliation
	ReadingTime       = internal.ReadingTime
	BlogPost          = internal.BlogPost
	ResearchProject   = internal.ResearchProject
	Publication       = internal.Publication
	Talk              = internal.Talk
	Poster            = internal.Poster
	Page              = internal.Page
	Profile           = internal.Profile
	PublicationCounts = internal.PublicationCounts
)

// Group is one partition of a collection.
type Group[K comparable, T any] = internal.Group[K, T]

const (
	TypeBlog         = internal.TypeBlog
	TypeResearch     = internal.TypeResearch
	TypePublications = internal.TypePublications
	TypeTalks        = internal.TypeTalks
	TypePosters      = internal.TypePosters
	TypePages        = internal.TypePages
	TypePerson       = internal.TypePerson
)

// KnownTypes lists the content types with typed records.
func KnownTypes() []string { return internal.KnownTypes() }

// EstimateReadingTime converts a word count into a reading time.
func EstimateReadingTime(words, wpm int) ReadingTime {
	return internal.EstimateReadingTime(words, wpm)
}

func PostsByYear(posts []BlogPost) []Group[int, BlogPost] { return internal.PostsByYear(posts) }

func PublicationsByYear(pubs []Publication) []Group[int, Publication] {
	return internal.PublicationsByYear(pubs)
}

func TalksByYear(talks []Talk) []Group[int, Talk] { return internal.TalksByYear(talks) }

func PostersByYear(posters []Poster) []Group[int, Poster] { return internal.PostersByYear(posters) }

func ResearchByStatus(projects []ResearchProject) []Group[string, ResearchProject] {
	return internal.ResearchByStatus(projects)
}
