//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"net/url"
	"strings"
	"time"
)

// SkillLevel is the difficulty label shared by workshops, hairstyles and tutorials.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// Valid reports whether the skill level is supported.
func (l SkillLevel) Valid() bool {
	switch l {
	case SkillBeginner, SkillIntermediate, SkillAdvanced:
		return true
	default:
		return false
	}
}

// ParseSkillLevel normalizes a skill level string and reports whether it is supported.
func ParseSkillLevel(value string) (SkillLevel, bool) {
	level := SkillLevel(strings.ToLower(strings.TrimSpace(value)))
	if level.Valid() {
		return level, true
	}
	return "", false
}

// Workshop is a scheduled live class.
type Workshop struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Instructor          string     `json:"instructor"`
	InstructorID        string     `json:"instructorId"`
	Date                string     `json:"date"`
	Time                string     `json:"time"`
	Image               string     `json:"image"`
	Category            string     `json:"category"`
	Description         string     `json:"description,omitempty"`
	DurationMinutes     int        `json:"duration,omitempty"`
	SkillLevel          SkillLevel `json:"skill_level,omitempty"`
	Materials           []string   `json:"materials,omitempty"`
	Registered          bool       `json:"registered,omitempty"`
	MaxParticipants     int        `json:"maxParticipants,omitempty"`
	CurrentParticipants int        `json:"currentParticipants,omitempty"`
	Price               float64    `json:"price,omitempty"`
	IsFree              bool       `json:"isFree"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// IsFull reports whether the workshop has no seats left. Unlimited workshops are never full.
func (w Workshop) IsFull() bool {
	return w.MaxParticipants > 0 && w.CurrentParticipants >= w.MaxParticipants
}

// WithRegistration returns a copy marked registered (or not) with the participant count adjusted by one.
// The count never drops below zero.
func (w Workshop) WithRegistration(registered bool) Workshop {
	if registered {
		w.Registered = true
		w.CurrentParticipants++
		return w
	}
	w.Registered = false
	w.CurrentParticipants = max(0, w.CurrentParticipants-1)
	return w
}

// DateRange filters workshops relative to today.
type DateRange string

const (
	DateRangeUpcoming DateRange = "upcoming"
	DateRangePast     DateRange = "past"
	DateRangeAll      DateRange = "all"
)

// WorkshopFilters narrows the workshop list.
type WorkshopFilters struct {
	Category   string
	SkillLevel SkillLevel
	DateRange  DateRange
	Search     string
	Page       int
	Limit      int
}

// Values encodes the filters as query parameters, omitting empty ones.
func (f WorkshopFilters) Values() url.Values {
	v := url.Values{}
	setIf(v, "category", f.Category)
	setIf(v, "skill_level", string(f.SkillLevel))
	setIf(v, "date_range", string(f.DateRange))
	setIf(v, "search", strings.TrimSpace(f.Search))
	f.pageValues(v)
	return v
}

// Key returns a stable identity for the filter set, used as the last segment of cache keys.
func (f WorkshopFilters) Key() string {
	return f.Values().Encode()
}

func (f WorkshopFilters) pageValues(v url.Values) {
	PageRequest{Page: f.Page, Limit: f.Limit}.apply(v)
}

// WorkshopList is one page of workshops.
type WorkshopList struct {
	Workshops  []Workshop `json:"workshops"`
	Pagination Pagination `json:"pagination"`
}

// WithRegistration returns a copy of the list where workshop id has its registration toggled.
// Other entries are left untouched.
func (l WorkshopList) WithRegistration(id string, registered bool) WorkshopList {
	out := l
	out.Workshops = make([]Workshop, len(l.Workshops))
	for i, w := range l.Workshops {
		if w.ID == id {
			w = w.WithRegistration(registered)
		}
		out.Workshops[i] = w
	}
	return out
}
