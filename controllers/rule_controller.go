// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package controllers

import (
	"github.com/codetrail-dev/codetrail/dtos"
	"github.com/codetrail-dev/codetrail/shared"
	"github.com/codetrail-dev/codetrail/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type RuleController struct {
	ruleRepo shared.RuleRepo
}

func NewRuleController(ruleRepo shared.RuleRepo) *RuleController {
	return &RuleController{ruleRepo: ruleRepo}
}

// @Summary List rules, optionally restricted to one rule repository
// @Param repository query string false "Rule repository id"
// @Success 200 {array} dtos.RuleDTO
// @Router /rules [get]
func (c *RuleController) List(ctx shared.Context) error {
	var err error
	var rules []dtos.RuleDTO

	if raw := ctx.QueryParam("repository"); raw != "" {
		repositoryID, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			return echo.NewHTTPError(400, "invalid rule repository id").WithInternal(parseErr)
		}
		var matched []dtos.RuleDTO
		matched, err = c.listByRepository(repositoryID)
		rules = matched
	} else {
		rules, err = c.listAll()
	}
	if err != nil {
		return echo.NewHTTPError(500, "could not list rules").WithInternal(err)
	}

	return ctx.JSON(200, rules)
}

func (c *RuleController) listAll() ([]dtos.RuleDTO, error) {
	rules, err := c.ruleRepo.All()
	if err != nil {
		return nil, err
	}
	return utils.Map(rules, dtos.RuleToDTO), nil
}

func (c *RuleController) listByRepository(repositoryID uuid.UUID) ([]dtos.RuleDTO, error) {
	rules, err := c.ruleRepo.ListByRepositoryID(repositoryID)
	if err != nil {
		return nil, err
	}
	return utils.Map(rules, dtos.RuleToDTO), nil
}
