// Package auth contains domain-level types for the stylist account and its session.
// It is pure and free of framework/adapter concerns.
package auth

import "time"

// SocialLinks groups optional public profile links.
type SocialLinks struct {
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Website   string `json:"website,omitempty"`
}

// User is the account record returned by the backend and held by the session store.
// JSON names follow the backend payloads.
type User struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	FirstName      string       `json:"firstName,omitempty"`
	LastName       string       `json:"lastName,omitempty"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone,omitempty"`
	Location       string       `json:"location,omitempty"`
	Avatar         string       `json:"avatar,omitempty"`
	Bio            string       `json:"bio,omitempty"`
	Specialties    []string     `json:"specialties,omitempty"`
	Experience     string       `json:"experience,omitempty"`
	Certifications []string     `json:"certifications,omitempty"`
	SocialLinks    *SocialLinks `json:"social_links,omitempty"`
	IsPremium      bool         `json:"isPremium"`
	TrialDaysLeft  int          `json:"trialDaysLeft"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// Clone returns a deep copy so callers never share slices with the session store.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Specialties = append([]string(nil), u.Specialties...)
	c.Certifications = append([]string(nil), u.Certifications...)
	if u.SocialLinks != nil {
		links := *u.SocialLinks
		c.SocialLinks = &links
	}
	return &c
}

// DisplayName prefers the full name, then first/last, then the email.
func (u *User) DisplayName() string {
	switch {
	case u == nil:
		return ""
	case u.Name != "":
		return u.Name
	case u.FirstName != "" || u.LastName != "":
		if u.LastName == "" {
			return u.FirstName
		}
		if u.FirstName == "" {
			return u.LastName
		}
		return u.FirstName + " " + u.LastName
	default:
		return u.Email
	}
}

// UserPatch is a partial update merged into the held user. Nil fields are left untouched.
type UserPatch struct {
	Name           *string      `json:"name,omitempty"`
	FirstName      *string      `json:"firstName,omitempty"`
	LastName       *string      `json:"lastName,omitempty"`
	Email          *string      `json:"email,omitempty"`
	Phone          *string      `json:"phone,omitempty"`
	Location       *string      `json:"location,omitempty"`
	Avatar         *string      `json:"avatar,omitempty"`
	Bio            *string      `json:"bio,omitempty"`
	Specialties    []string     `json:"specialties,omitempty"`
	Experience     *string      `json:"experience,omitempty"`
	Certifications []string     `json:"certifications,omitempty"`
	SocialLinks    *SocialLinks `json:"social_links,omitempty"`
	IsPremium      *bool        `json:"isPremium,omitempty"`
	TrialDaysLeft  *int         `json:"trialDaysLeft,omitempty"`
}

// Apply returns a copy of u with the patch merged in.
func (p UserPatch) Apply(u *User) *User {
	if u == nil {
		return nil
	}
	out := u.Clone()
	setString(&out.Name, p.Name)
	setString(&out.FirstName, p.FirstName)
	setString(&out.LastName, p.LastName)
	setString(&out.Email, p.Email)
	setString(&out.Phone, p.Phone)
	setString(&out.Location, p.Location)
	setString(&out.Avatar, p.Avatar)
	setString(&out.Bio, p.Bio)
	setString(&out.Experience, p.Experience)
	if p.Specialties != nil {
		out.Specialties = append([]string(nil), p.Specialties...)
	}
	if p.Certifications != nil {
		out.Certifications = append([]string(nil), p.Certifications...)
	}
	if p.SocialLinks != nil {
		links := *p.SocialLinks
		out.SocialLinks = &links
	}
	if p.IsPremium != nil {
		out.IsPremium = *p.IsPremium
	}
	if p.TrialDaysLeft != nil {
		out.TrialDaysLeft = *p.TrialDaysLeft
	}
	return out
}

// IsEmpty reports whether the patch carries no changes.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.FirstName == nil && p.LastName == nil && p.Email == nil &&
		p.Phone == nil && p.Location == nil && p.Avatar == nil && p.Bio == nil &&
		p.Specialties == nil && p.Experience == nil && p.Certifications == nil &&
		p.SocialLinks == nil && p.IsPremium == nil && p.TrialDaysLeft == nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// Snapshot is the persisted part of the session: never the transient loading/error fields.
type Snapshot struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"isAuthenticated"`
}
