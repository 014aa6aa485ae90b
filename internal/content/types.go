package content

import (
	"maps"
	"slices"
	"time"

	"github.com/goliatone/go-portfolio/internal/validation"
	"github.com/google/uuid"
)

// Content type directory names.
const (
	TypeBlog         = validation.TypeBlog
	TypeResearch     = validation.TypeResearch
	TypePublications = validation.TypePublications
	TypeTalks        = validation.TypeTalks
	TypePosters      = validation.TypePosters
	TypePages        = validation.TypePages
	TypePerson       = validation.TypePerson
)

// KnownTypes lists the content types the repository has typed records for.
func KnownTypes() []string {
	return []string{TypeBlog, TypeResearch, TypePublications, TypeTalks, TypePosters, TypePages, TypePerson}
}

// Item is one parsed content file.
type Item struct {
	ID         string
	UUID       uuid.UUID
	Slug       string
	Type       string
	Title      string
	Body       string
	SourcePath string
	Metadata   map[string]any
	// Issues lists front matter lint findings. Items with issues are still
	// served; typed fields fall back to their defaults.
	Issues       []validation.ValidationIssue
	Checksum     []byte
	LastModified time.Time
}

// Clone returns a copy of the item that shares no mutable state with i.
func (i Item) Clone() Item {
	out := i
	out.Metadata = cloneMetadata(i.Metadata)
	out.Issues = slices.Clone(i.Issues)
	out.Checksum = slices.Clone(i.Checksum)
	return out
}

func cloneMetadata(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}
	out := make(map[string]any, len(meta))
	for key, value := range meta {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return cloneMetadata(v)
	case []any:
		out := make([]any, len(v))
		for i, inner := range v {
			out[i] = cloneValue(inner)
		}
		return out
	default:
		return v
	}
}

func cloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

// Link is a labelled external URL.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Affiliation is an employer or membership shown on the profile.
type Affiliation struct {
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// ReadingTime estimates how long a post takes to read.
type ReadingTime struct {
	Words    int
	Minutes  float64
	Duration time.Duration
	Text     string
}

// BlogPost is a blog entry.
type BlogPost struct {
	Item
	// PublishedAt is the date as authored.
	PublishedAt string
	// Published is the parsed PublishedAt; zero when it cannot be parsed.
	Published   time.Time
	Author      string
	Draft       bool
	Tags        []string
	Excerpt     string
	OGImage     string
	ReadingTime ReadingTime
}

// Research project statuses.
const (
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
)

// Research project categories.
const (
	CategoryThesis     = "thesis"
	CategoryProject    = "project"
	CategoryExperiment = "experiment"
	CategoryBootcamp   = "bootcamp"
	CategoryOther      = "other"
)

// ResearchProject is a research project or thesis.
type ResearchProject struct {
	Item
	ShortTitle  string
	Institution string
	Department  string
	DateRange   string
	Status      string
	Category    string
	Description string
	Supervisors string
	Featured    bool
	Tags        []string
	Links       []Link
}

// Publication types.
const (
	PublicationJournal    = "journal"
	PublicationPreprint   = "preprint"
	PublicationThesis     = "thesis"
	PublicationReport     = "report"
	PublicationBook       = "book"
	PublicationConference = "conference"
)

// Publication statuses.
const (
	PublicationPublished  = "published"
	PublicationInPrep     = "in-prep"
	PublicationPreprinted = "preprint"
	PublicationAccepted   = "accepted"
)

// Publication is a paper, thesis, report or book.
type Publication struct {
	Item
	Type     string
	Authors  string
	Venue    string
	Year     int
	Status   string
	DOI      string
	URL      string
	Abstract string
}

// Talk kinds.
const (
	TalkKeynote      = "keynote"
	TalkPresentation = "presentation"
	TalkWorkshop     = "workshop"
	TalkPanel        = "panel"
	TalkInvited      = "invited"
)

// Talk is a conference talk or presentation.
type Talk struct {
	Item
	Event       string
	Location    string
	Date        string
	Year        int
	Kind        string
	URL         string
	Description string
}

// Poster is a poster presentation.
type Poster struct {
	Item
	Event     string
	Location  string
	Date      string
	Year      int
	CoAuthors string
	URL       string
}

// Page is a static page such as "about".
type Page struct {
	Item
}

// Profile placeholders used when no profile file exists.
const (
	DefaultProfileName    = "Your Name"
	DefaultProfileTagline = "Your Title"
)

// Profile is the portfolio owner's biography. It is never absent.
type Profile struct {
	UUID         uuid.UUID
	Name         string
	Tagline      string
	Institution  string
	Department   string
	Bio          string
	HeroImage    string
	HeroTitle    string
	HeroSubtitle string
	HeroTagline  string
	Email        string
	Social       map[string]string
	ProfileURLs  []Link
	Employers    []Affiliation
	Memberships  []Affiliation
	Body         string
	SourcePath   string
}

// SocialLinks returns the social map as links ordered by label.
func (p Profile) SocialLinks() []Link {
	labels := slices.Sorted(maps.Keys(p.Social))
	links := make([]Link, 0, len(labels))
	for _, label := range labels {
		links = append(links, Link{Label: label, URL: p.Social[label]})
	}
	return links
}

// PublicationCounts totals the academic output.
type PublicationCounts struct {
	Publications int
	Talks        int
	Posters      int
	Total        int
}
