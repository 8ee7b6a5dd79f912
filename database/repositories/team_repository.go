// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package repositories

import (
	"github.com/codetrail-dev/codetrail/common"
	"github.com/codetrail-dev/codetrail/database/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type teamRepository struct {
	db *gorm.DB
	common.Repository[uuid.UUID, models.Team, *gorm.DB]
}

func NewTeamRepository(db *gorm.DB) *teamRepository {
	return &teamRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Team](db),
	}
}

// TeamsOfUser returns every team the given username is a member of,
// including the teams' projects for access computation.
func (r *teamRepository) TeamsOfUser(username string) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.
		Preload("Projects").
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Joins("JOIN users ON users.id = team_members.user_id").
		Where("users.username = ?", username).
		Find(&teams).Error
	return teams, err
}

func (r *teamRepository) TeamsOfProject(projectID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.
		Joins("JOIN team_projects ON team_projects.team_id = teams.id").
		Where("team_projects.project_id = ?", projectID).
		Find(&teams).Error
	return teams, err
}
