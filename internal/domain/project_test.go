package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicantStatus(t *testing.T) {
	assert.True(t, ApplicantPending.IsValid())
	assert.True(t, ApplicantAccepted.IsValid())
	assert.True(t, ApplicantRejected.IsValid())
	assert.False(t, ApplicantStatus("approved").IsValid())

	assert.False(t, ApplicantPending.IsDecision())
	assert.True(t, ApplicantAccepted.IsDecision())
	assert.True(t, ApplicantRejected.IsDecision())
}

func TestSubmissionStatus(t *testing.T) {
	assert.True(t, SubmissionPending.IsValid())
	assert.True(t, SubmissionApproved.IsValid())
	assert.True(t, SubmissionChangesRequested.IsValid())
	assert.False(t, SubmissionStatus("rejected").IsValid())

	assert.False(t, SubmissionPending.IsReview())
	assert.True(t, SubmissionApproved.IsReview())
	assert.True(t, SubmissionChangesRequested.IsReview())
}

func TestNewClientInfo(t *testing.T) {
	client := &User{
		Name:        "Grace",
		GroupName:   "Acme",
		Email:       "grace@example.com",
		LinkedinURL: "https://linkedin.com/in/grace",
		Role:        RoleClient,
	}

	t.Run("Reduced", func(t *testing.T) {
		info := NewClientInfo(client, false)
		assert.Equal(t, "Grace", info.Name)
		assert.Empty(t, info.Email)
		assert.Empty(t, info.Linkedin)
	})

	t.Run("Revealed", func(t *testing.T) {
		info := NewClientInfo(client, true)
		assert.Equal(t, client.Email, info.Email)
		assert.Equal(t, client.LinkedinURL, info.Linkedin)
	})
}
