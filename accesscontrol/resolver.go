// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package accesscontrol decides which projects a user may see. Visibility
// is team based: a user reaches a project when one of their teams is
// associated with it, admins reach everything.
package accesscontrol

import (
	"github.com/codetrail-dev/codetrail/database/models"
	"github.com/codetrail-dev/codetrail/shared"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type resolver struct {
	teamRepository    shared.TeamRepository
	projectRepository shared.ProjectRepository
}

func NewResolver(teamRepository shared.TeamRepository, projectRepository shared.ProjectRepository) shared.AccessResolver {
	return &resolver{
		teamRepository:    teamRepository,
		projectRepository: projectRepository,
	}
}

// AccessibleProjectIDs returns the deduplicated ids of all projects the
// user's teams are associated with. Admins get every project.
func (r *resolver) AccessibleProjectIDs(user models.User) ([]uuid.UUID, error) {
	if user.Role == models.RoleAdmin {
		projects, err := r.projectRepository.All()
		if err != nil {
			return nil, errors.Wrap(err, "could not list projects")
		}
		ids := make([]uuid.UUID, 0, len(projects))
		for _, project := range projects {
			ids = append(ids, project.ID)
		}
		return ids, nil
	}

	teams, err := r.teamRepository.TeamsOfUser(user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "could not load teams of user")
	}

	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0)
	for _, team := range teams {
		for _, project := range team.Projects {
			if _, ok := seen[project.ID]; ok {
				continue
			}
			seen[project.ID] = struct{}{}
			ids = append(ids, project.ID)
		}
	}
	return ids, nil
}

// HasAccess reports whether the user may see the project: admins always,
// everyone else through a shared team.
func (r *resolver) HasAccess(user models.User, project models.Project) (bool, error) {
	if user.Role == models.RoleAdmin {
		return true, nil
	}

	userTeams, err := r.teamRepository.TeamsOfUser(user.Username)
	if err != nil {
		return false, errors.Wrap(err, "could not load teams of user")
	}
	projectTeams, err := r.teamRepository.TeamsOfProject(project.ID)
	if err != nil {
		return false, errors.Wrap(err, "could not load teams of project")
	}

	projectTeamIDs := make(map[uuid.UUID]struct{}, len(projectTeams))
	for _, team := range projectTeams {
		projectTeamIDs[team.ID] = struct{}{}
	}
	for _, team := range userTeams {
		if _, ok := projectTeamIDs[team.ID]; ok {
			return true, nil
		}
	}
	return false, nil
}
