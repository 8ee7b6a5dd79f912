// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package controllers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/codetrail-dev/codetrail/database"
	"github.com/codetrail-dev/codetrail/database/models"
	"github.com/codetrail-dev/codetrail/dtos"
	"github.com/codetrail-dev/codetrail/monitoring"
	"github.com/codetrail-dev/codetrail/shared"
	"github.com/codetrail-dev/codetrail/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type RuleRepositoryController struct {
	ruleRepositoryRepository shared.RuleRepositoryRepository
	ruleService              shared.RuleService
	synchronizer             shared.FireAndForgetSynchronizer
}

func NewRuleRepositoryController(ruleRepositoryRepository shared.RuleRepositoryRepository, ruleService shared.RuleService, synchronizer shared.FireAndForgetSynchronizer) *RuleRepositoryController {
	return &RuleRepositoryController{
		ruleRepositoryRepository: ruleRepositoryRepository,
		ruleService:              ruleService,
		synchronizer:             synchronizer,
	}
}

func (c *RuleRepositoryController) List(ctx shared.Context) error {
	repos, err := c.ruleRepositoryRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list rule repositories").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(repos, dtos.RuleRepositoryToDTO))
}

// @Summary Register a rule repository and import its rules
// @Param body body dtos.RuleRepositoryCreateRequest true "Request body"
// @Success 201 {object} dtos.RuleRepositoryDTO
// @Router /rule-repositories [post]
func (c *RuleRepositoryController) Create(ctx shared.Context) error {
	var req dtos.RuleRepositoryCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	repo := models.RuleRepository{
		Name:        req.Name,
		URI:         req.URI,
		Description: req.Description,
	}
	if err := c.ruleRepositoryRepository.Create(nil, &repo); err != nil {
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(409, "rule repository already exists").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not create rule repository").WithInternal(err)
	}

	// checkout and import run in the background, LastUpdateOn signals
	// completion
	c.synchronizer.FireAndForget(func() {
		bgCtx := context.Background()
		if err := c.ruleService.CloneRepository(bgCtx, repo); err != nil {
			monitoring.Alert("could not clone rule repository", err)
			return
		}
		if err := c.ruleService.Sync(bgCtx, repo); err != nil {
			monitoring.Alert("could not synchronize rule repository", err)
		}
	})

	return ctx.JSON(201, dtos.RuleRepositoryToDTO(repo))
}

func (c *RuleRepositoryController) Delete(ctx shared.Context) error {
	id, err := uuid.Parse(ctx.Param("ruleRepositoryID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid rule repository id").WithInternal(err)
	}

	repo, err := c.ruleRepositoryRepository.Read(id)
	if err != nil {
		return echo.NewHTTPError(404, "rule repository not found").WithInternal(err)
	}

	// rules cascade with the row, the checkout goes with it
	if err := c.ruleRepositoryRepository.Delete(nil, id); err != nil {
		return echo.NewHTTPError(500, "could not delete rule repository").WithInternal(err)
	}
	if err := os.RemoveAll(filepath.Join(shared.RulesDir(), repo.Name)); err != nil {
		return echo.NewHTTPError(500, "could not remove rule repository checkout").WithInternal(err)
	}

	return ctx.NoContent(204)
}

// @Summary Pull the checkout and re-import all rules
// @Success 202
// @Router /rule-repositories/{ruleRepositoryID}/sync [post]
func (c *RuleRepositoryController) Sync(ctx shared.Context) error {
	id, err := uuid.Parse(ctx.Param("ruleRepositoryID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid rule repository id").WithInternal(err)
	}

	repo, err := c.ruleRepositoryRepository.Read(id)
	if err != nil {
		return echo.NewHTTPError(404, "rule repository not found").WithInternal(err)
	}

	c.synchronizer.FireAndForget(func() {
		bgCtx := context.Background()
		if err := c.ruleService.PullRepository(bgCtx, repo); err != nil {
			monitoring.Alert("could not pull rule repository", err)
			return
		}
		if err := c.ruleService.Sync(bgCtx, repo); err != nil {
			monitoring.Alert("could not synchronize rule repository", err)
		}
	})

	return ctx.NoContent(202)
}
