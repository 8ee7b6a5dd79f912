// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// User mirrors an identity managed by the upstream auth proxy. The row only
// exists to participate in team memberships; credentials and sessions are
// handled externally.
type User struct {
	Model
	Username string `json:"username" gorm:"type:varchar(255);uniqueIndex;not null"`
	Role     Role   `json:"role" gorm:"type:text;not null;default:'member'"`

	Teams []Team `json:"teams,omitempty" gorm:"many2many:team_members;"`
}

func (u User) TableName() string {
	return "users"
}

// Team groups users and projects for access computation. Teams do not own
// projects; membership is a pure access relation.
type Team struct {
	Model
	Name string `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`

	Members  []User    `json:"members,omitempty" gorm:"many2many:team_members;"`
	Projects []Project `json:"projects,omitempty" gorm:"many2many:team_projects;"`
}

func (t Team) TableName() string {
	return "teams"
}
