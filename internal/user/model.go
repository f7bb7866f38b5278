package user

import (
	"strings"
	"time"
)

// Profile is a user record as listed by the remote API. Name and email may be null.
type Profile struct {
	ID        string    `json:"id"`
	Name      *string   `json:"name"`
	Email     *string   `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p Profile) DisplayName() string {
	if p.Name == nil || strings.TrimSpace(*p.Name) == "" {
		return "Unknown"
	}
	return strings.TrimSpace(*p.Name)
}

func (p Profile) DisplayEmail() string {
	if p.Email == nil {
		return ""
	}
	return *p.Email
}

func (p Profile) Initials() string {
	if p.Name == nil {
		return Initials("")
	}
	return Initials(*p.Name)
}

// Initials returns the upper-cased first letters of the first two words of name,
// or "U" when name is blank.
func Initials(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "U"
	}
	var b strings.Builder
	for _, p := range parts {
		r := []rune(p)
		b.WriteString(strings.ToUpper(string(r[0])))
		if len([]rune(b.String())) == 2 {
			break
		}
	}
	return b.String()
}
