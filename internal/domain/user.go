package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type UserRole string

const (
	RoleFreelancer UserRole = "freelancer"
	RoleClient     UserRole = "client"
	RoleAdmin      UserRole = "admin"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleFreelancer, RoleClient, RoleAdmin:
		return true
	default:
		return false
	}
}

// User is the common identity record. The freelancer-only fields (skills,
// social links, rating, past projects) are populated only when Role is
// freelancer; clients and admins carry just the base identity.
type User struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Name         string     `json:"name" db:"name"`
	GroupName    string     `json:"group_name" db:"group_name"`
	ImageURL     *string    `json:"image_url,omitempty" db:"image_url"`
	Bio          string     `json:"bio" db:"bio"`
	Role         UserRole   `json:"role" db:"role"`
	OTPCode      *string    `json:"-" db:"otp_code"`
	OTPExpiresAt *time.Time `json:"-" db:"otp_expires_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`

	Skills       pq.StringArray `json:"skills,omitempty" db:"skills"`
	GithubURL    string         `json:"github_url,omitempty" db:"github_url"`
	LinkedinURL  string         `json:"linkedin_url,omitempty" db:"linkedin_url"`
	RatingValue  float64        `json:"rating_value" db:"rating_value"`
	RatingCount  int            `json:"rating_count" db:"rating_count"`
	PastProjects PastProjects   `json:"past_projects,omitempty" db:"past_projects"`
}

type PastProject struct {
	Title string `json:"title"`
	Role  string `json:"role"`
	Link  string `json:"link"`
}

// PastProjects is stored as a jsonb column.
type PastProjects []PastProject

func (p PastProjects) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (p *PastProjects) Scan(src interface{}) error {
	if src == nil {
		*p = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return errors.New("unsupported type for PastProjects")
	}
}

type SocialLinks struct {
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
}

type SignupInput struct {
	Name         string       `json:"name" validate:"required,min=2"`
	Email        string       `json:"email" validate:"required,email"`
	Password     string       `json:"password" validate:"required,min=8"`
	Role         UserRole     `json:"role" validate:"required,oneof=freelancer client admin"`
	GroupName    string       `json:"group_name"`
	Skills       []string     `json:"skills"`
	Social       SocialLinks  `json:"social"`
	PastProjects PastProjects `json:"past_projects"`
	CaptchaToken string       `json:"captcha_token"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileInput struct {
	Name         *string       `json:"name,omitempty"`
	GroupName    *string       `json:"group_name,omitempty"`
	Bio          *string       `json:"bio,omitempty"`
	Skills       []string      `json:"skills,omitempty"`
	Social       *SocialLinks  `json:"social,omitempty"`
	PastProjects *PastProjects `json:"past_projects,omitempty"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// PublicProfile returns the externally visible view of a user. The email
// address is shown only for freelancers; clients and admins keep it private.
func (u *User) PublicProfile() map[string]interface{} {
	profile := map[string]interface{}{
		"id":         u.ID,
		"name":       u.Name,
		"group_name": u.GroupName,
		"image_url":  u.ImageURL,
		"bio":        u.Bio,
		"role":       u.Role,
	}
	if u.Role == RoleFreelancer {
		profile["email"] = u.Email
		profile["skills"] = u.Skills
		profile["github_url"] = u.GithubURL
		profile["linkedin_url"] = u.LinkedinURL
		profile["rating_value"] = u.RatingValue
		profile["rating_count"] = u.RatingCount
		profile["past_projects"] = u.PastProjects
	}
	return profile
}
