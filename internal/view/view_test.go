// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"learnhub/cli/internal/account"
)

func userWithRole(r account.Role) *account.User {
	return &account.User{ID: 1, Name: "U", Role: r}
}

func commands(items []NavItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Command)
	}
	return out
}

func TestNavFor(t *testing.T) {
	tests := []struct {
		name     string
		user     *account.User
		contains []string
		excludes []string
	}{
		{
			name:     "anonymous gets public nav only",
			user:     nil,
			contains: []string{"learnhub courses", "learnhub login", "learnhub register"},
			excludes: []string{"learnhub my-courses", "learnhub publish", "learnhub approve"},
		},
		{
			name:     "student sees my courses",
			user:     userWithRole(account.RoleStudent),
			contains: []string{"learnhub my-courses"},
			excludes: []string{"learnhub publish", "learnhub approve"},
		},
		{
			name:     "instructor sees authoring",
			user:     userWithRole(account.RoleInstructor),
			contains: []string{"learnhub my-courses", "learnhub publish"},
			excludes: []string{"learnhub approve"},
		},
		{
			name:     "admin sees moderation",
			user:     userWithRole(account.RoleAdmin),
			contains: []string{"learnhub approve"},
			excludes: []string{"learnhub publish"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds := commands(NavFor(tt.user))
			for _, want := range tt.contains {
				assert.Contains(t, cmds, want)
			}
			for _, not := range tt.excludes {
				assert.NotContains(t, cmds, not)
			}
		})
	}
}

func TestDashboardFor(t *testing.T) {
	assert.Equal(t, DashboardAnonymous, DashboardFor(nil))
	assert.Equal(t, DashboardStudent, DashboardFor(userWithRole(account.RoleStudent)))
	assert.Equal(t, DashboardInstructor, DashboardFor(userWithRole(account.RoleInstructor)))
	assert.Equal(t, DashboardAdmin, DashboardFor(userWithRole(account.RoleAdmin)))
	// Unknown role degrades to the public variant rather than guessing.
	assert.Equal(t, DashboardAnonymous, DashboardFor(userWithRole(account.Role("superuser"))))
}

func TestAccessChecks(t *testing.T) {
	assert.False(t, CanAuthorCourses(nil))
	assert.False(t, CanAuthorCourses(userWithRole(account.RoleStudent)))
	assert.True(t, CanAuthorCourses(userWithRole(account.RoleInstructor)))
	assert.True(t, CanAuthorCourses(userWithRole(account.RoleAdmin)))

	assert.False(t, CanModerate(userWithRole(account.RoleInstructor)))
	assert.True(t, CanModerate(userWithRole(account.RoleAdmin)))

	assert.True(t, CanEnroll(userWithRole(account.RoleStudent)))
	assert.False(t, CanEnroll(userWithRole(account.RoleAdmin)))
}

func TestRequireRole(t *testing.T) {
	assert.Error(t, RequireRole(nil, account.RoleStudent))
	assert.NoError(t, RequireRole(userWithRole(account.RoleStudent), account.RoleStudent))

	err := RequireRole(userWithRole(account.RoleStudent), account.RoleInstructor, account.RoleAdmin)
	assert.ErrorContains(t, err, "instructor or admin")
}
