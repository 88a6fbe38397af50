// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package view decides what the UI exposes for each role: navigation
// entries, the dashboard variant, and access checks on protected commands.
// This is a UI affordance only: the backend enforces real authorization;
// hiding a command here is a convenience, not a security boundary.
package view

import (
	"fmt"

	"learnhub/cli/internal/account"
)

// NavItem is one entry in the command navigation shown by help and the
// dashboard footer.
type NavItem struct {
	Label   string
	Command string
}

// Dashboard selects which dashboard variant a user sees.
type Dashboard int

const (
	DashboardAnonymous Dashboard = iota
	DashboardStudent
	DashboardInstructor
	DashboardAdmin
)

// publicNav is what an anonymous user can reach.
var publicNav = []NavItem{
	{Label: "Browse courses", Command: "learnhub courses"},
	{Label: "Log in", Command: "learnhub login"},
	{Label: "Create an account", Command: "learnhub register"},
}

// NavFor returns the navigation for a user. A nil user gets the public nav.
// The switch over roles is exhaustive; an unknown role (possible only if the
// backend grows one this build does not know) degrades to the public nav.
func NavFor(user *account.User) []NavItem {
	if user == nil {
		return publicNav
	}

	base := []NavItem{
		{Label: "Browse courses", Command: "learnhub courses"},
		{Label: "Dashboard", Command: "learnhub dashboard"},
		{Label: "Profile", Command: "learnhub profile"},
	}

	switch user.Role {
	case account.RoleStudent:
		return append(base,
			NavItem{Label: "My courses", Command: "learnhub my-courses"},
		)
	case account.RoleInstructor:
		return append(base,
			NavItem{Label: "My courses", Command: "learnhub my-courses"},
			NavItem{Label: "Create course", Command: "learnhub publish"},
		)
	case account.RoleAdmin:
		return append(base,
			NavItem{Label: "Moderation", Command: "learnhub approve"},
		)
	}
	return publicNav
}

// DashboardFor picks the dashboard variant for a user.
func DashboardFor(user *account.User) Dashboard {
	if user == nil {
		return DashboardAnonymous
	}
	switch user.Role {
	case account.RoleStudent:
		return DashboardStudent
	case account.RoleInstructor:
		return DashboardInstructor
	case account.RoleAdmin:
		return DashboardAdmin
	}
	return DashboardAnonymous
}

// CanAuthorCourses reports whether the user may use course-authoring
// commands (create, update, delete).
func CanAuthorCourses(user *account.User) bool {
	if user == nil {
		return false
	}
	switch user.Role {
	case account.RoleInstructor, account.RoleAdmin:
		return true
	case account.RoleStudent:
		return false
	}
	return false
}

// CanModerate reports whether the user may approve or reject courses.
func CanModerate(user *account.User) bool {
	return user != nil && user.Role == account.RoleAdmin
}

// CanEnroll reports whether the user may enroll in courses.
func CanEnroll(user *account.User) bool {
	return user != nil && user.Role == account.RoleStudent
}

// RequireRole returns a display-ready error when the user lacks a role.
// Commands use it as their access-denied placeholder.
func RequireRole(user *account.User, allowed ...account.Role) error {
	if user == nil {
		return fmt.Errorf("you need to be logged in for this: run 'learnhub login'")
	}
	for _, r := range allowed {
		if user.Role == r {
			return nil
		}
	}
	return fmt.Errorf("this command is available to %s accounts only (you are %s)", roleList(allowed), user.Role)
}

func roleList(roles []account.Role) string {
	out := ""
	for i, r := range roles {
		if i > 0 {
			out += " or "
		}
		out += r.String()
	}
	return out
}
