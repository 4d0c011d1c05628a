package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRole_IsValid(t *testing.T) {
	assert.True(t, RoleFreelancer.IsValid())
	assert.True(t, RoleClient.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, UserRole("moderator").IsValid())
	assert.False(t, UserRole("").IsValid())
}

func TestUser_PublicProfile(t *testing.T) {
	t.Run("Freelancer", func(t *testing.T) {
		user := &User{
			Name:      "Ada",
			Email:     "ada@example.com",
			Role:      RoleFreelancer,
			Skills:    []string{"Go"},
			GithubURL: "https://github.com/ada",
		}

		profile := user.PublicProfile()

		assert.Equal(t, "ada@example.com", profile["email"])
		assert.Equal(t, "https://github.com/ada", profile["github_url"])
	})

	t.Run("Client", func(t *testing.T) {
		user := &User{
			Name:  "Grace",
			Email: "grace@example.com",
			Role:  RoleClient,
		}

		profile := user.PublicProfile()

		assert.NotContains(t, profile, "email")
		assert.NotContains(t, profile, "skills")
		assert.Equal(t, "Grace", profile["name"])
	})
}

func TestPastProjects_ValueScan(t *testing.T) {
	projects := PastProjects{{Title: "CLI Tool", Role: "Author", Link: "https://example.com"}}

	value, err := projects.Value()
	assert.NoError(t, err)

	var decoded PastProjects
	assert.NoError(t, decoded.Scan(value))
	assert.Equal(t, projects, decoded)

	var empty PastProjects
	v, err := empty.Value()
	assert.NoError(t, err)
	assert.Equal(t, "[]", v)
}
