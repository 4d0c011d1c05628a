package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ApplicantStatus string

const (
	ApplicantPending  ApplicantStatus = "pending"
	ApplicantAccepted ApplicantStatus = "accepted"
	ApplicantRejected ApplicantStatus = "rejected"
)

func (s ApplicantStatus) IsValid() bool {
	switch s {
	case ApplicantPending, ApplicantAccepted, ApplicantRejected:
		return true
	default:
		return false
	}
}

// IsDecision reports whether the status is one a project owner may set.
// Owners decide accepted/rejected; only admins may move an entry back to
// pending.
func (s ApplicantStatus) IsDecision() bool {
	return s == ApplicantAccepted || s == ApplicantRejected
}

type SubmissionStatus string

const (
	SubmissionPending          SubmissionStatus = "pending"
	SubmissionApproved         SubmissionStatus = "approved"
	SubmissionChangesRequested SubmissionStatus = "changes_requested"
)

func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionPending, SubmissionApproved, SubmissionChangesRequested:
		return true
	default:
		return false
	}
}

// IsReview reports whether the status is one a reviewing client may set.
func (s SubmissionStatus) IsReview() bool {
	return s == SubmissionApproved || s == SubmissionChangesRequested
}

type Project struct {
	ID             uuid.UUID      `json:"id" db:"id"`
	ClientID       uuid.UUID      `json:"client_id" db:"client_id"`
	Title          string         `json:"title" db:"title"`
	Description    string         `json:"description" db:"description"`
	SkillsRequired pq.StringArray `json:"skills_required" db:"skills_required"`
	ProjectType    string         `json:"project_type" db:"project_type"`
	Deadline       *time.Time     `json:"deadline,omitempty" db:"deadline"`
	ImageURL       *string        `json:"image_url,omitempty" db:"image_url"`
	Featured       bool           `json:"featured" db:"featured"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" db:"updated_at"`

	Client      *ClientInfo  `json:"client,omitempty" db:"-"`
	Applicants  []Applicant  `json:"applicants,omitempty" db:"-"`
	Submissions []Submission `json:"submissions,omitempty" db:"-"`
}

type Applicant struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	ProjectID    uuid.UUID       `json:"project_id" db:"project_id"`
	FreelancerID uuid.UUID       `json:"freelancer_id" db:"freelancer_id"`
	CoverLetter  string          `json:"cover_letter" db:"cover_letter"`
	Status       ApplicantStatus `json:"status" db:"status"`
	AppliedAt    time.Time       `json:"applied_at" db:"applied_at"`

	Tasks      []Task `json:"tasks,omitempty" db:"-"`
	Freelancer *User  `json:"freelancer,omitempty" db:"-"`
}

type Task struct {
	ID          uuid.UUID `json:"id" db:"id"`
	ApplicantID uuid.UUID `json:"applicant_id" db:"applicant_id"`
	Description string    `json:"description" db:"description"`
	Completed   bool      `json:"completed" db:"completed"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type Submission struct {
	ID             uuid.UUID        `json:"id" db:"id"`
	ProjectID      uuid.UUID        `json:"project_id" db:"project_id"`
	FreelancerID   uuid.UUID        `json:"freelancer_id" db:"freelancer_id"`
	Message        string           `json:"message" db:"message"`
	Link           *string          `json:"link,omitempty" db:"link"`
	GithubURL      string           `json:"github_url" db:"github_url"`
	Status         SubmissionStatus `json:"status" db:"status"`
	ClientFeedback *string          `json:"client_feedback,omitempty" db:"client_feedback"`
	SubmittedAt    time.Time        `json:"submitted_at" db:"submitted_at"`

	Freelancer *User `json:"freelancer,omitempty" db:"-"`
}

// ClientInfo is the projection of a project's owning client embedded in
// project reads. Email and LinkedIn are revealed only to viewers who are
// accepted applicants on that project.
type ClientInfo struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	GroupName string    `json:"group_name"`
	ImageURL  *string   `json:"image_url,omitempty"`
	Bio       string    `json:"bio"`
	Email     string    `json:"email,omitempty"`
	Linkedin  string    `json:"linkedin,omitempty"`
}

func NewClientInfo(u *User, revealContact bool) *ClientInfo {
	info := &ClientInfo{
		ID:        u.ID,
		Name:      u.Name,
		GroupName: u.GroupName,
		ImageURL:  u.ImageURL,
		Bio:       u.Bio,
	}
	if revealContact {
		info.Email = u.Email
		info.Linkedin = u.LinkedinURL
	}
	return info
}

type CreateProjectInput struct {
	Title          string     `json:"title" validate:"required"`
	Description    string     `json:"description" validate:"required"`
	SkillsRequired []string   `json:"skills_required" validate:"required"`
	ProjectType    string     `json:"project_type"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	ImageURL       *string    `json:"image_url,omitempty"`
}

type UpdateProjectInput struct {
	Title          *string    `json:"title,omitempty"`
	Description    *string    `json:"description,omitempty"`
	SkillsRequired []string   `json:"skills_required,omitempty"`
	ProjectType    *string    `json:"project_type,omitempty"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	ImageURL       *string    `json:"image_url,omitempty"`
}

type ApplyInput struct {
	CoverLetter string `json:"cover_letter" validate:"required"`
}

type SubmitWorkInput struct {
	Message   string  `json:"message" validate:"required"`
	GithubURL string  `json:"github_url" validate:"required"`
	Link      *string `json:"link,omitempty"`
}

// ApplicationSummary is the application-centric read model behind
// "my applications": the caller's single application on a project together
// with the latest of their submissions. LatestFeedback comes from the newest
// submission that carries feedback, which can be older than Submission when a
// resubmission has not been reviewed yet.
type ApplicationSummary struct {
	ApplicationID      uuid.UUID       `json:"application_id"`
	ProjectID          uuid.UUID       `json:"project_id"`
	ProjectTitle       string          `json:"project_title"`
	ProjectDescription string          `json:"project_description"`
	Status             ApplicantStatus `json:"status"`
	HasSubmitted       bool            `json:"has_submitted"`
	Submission         *SubmissionView `json:"submission,omitempty"`
	Tasks              []Task          `json:"tasks"`
	AppliedAt          time.Time       `json:"applied_at"`
}

type SubmissionView struct {
	ID             uuid.UUID        `json:"id"`
	Status         SubmissionStatus `json:"status"`
	ClientFeedback *string          `json:"client_feedback,omitempty"`
	SubmittedAt    time.Time        `json:"submitted_at"`
}

// AdminApplicant is the flattened cross-project applicant row for the admin
// listing.
type AdminApplicant struct {
	Applicant
	ProjectTitle string `json:"project_title"`
}
