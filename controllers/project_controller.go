// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package controllers

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"strconv"

	"github.com/codetrail-dev/codetrail/database/models"
	"github.com/codetrail-dev/codetrail/dtos"
	"github.com/codetrail-dev/codetrail/linecount"
	"github.com/codetrail-dev/codetrail/shared"
	"github.com/codetrail-dev/codetrail/utils"
	"github.com/labstack/echo/v4"
)

type ProjectController struct {
	projectRepository           shared.ProjectRepository
	linesCountRepository        shared.LinesCountRepository
	supportedLanguageRepository shared.SupportedLanguageRepository
	projectService              shared.ProjectService
	scanService                 shared.ScanService
	accessResolver              shared.AccessResolver
}

func NewProjectController(projectRepository shared.ProjectRepository, linesCountRepository shared.LinesCountRepository, supportedLanguageRepository shared.SupportedLanguageRepository, projectService shared.ProjectService, scanService shared.ScanService, accessResolver shared.AccessResolver) *ProjectController {
	return &ProjectController{
		projectRepository:           projectRepository,
		linesCountRepository:        linesCountRepository,
		supportedLanguageRepository: supportedLanguageRepository,
		projectService:              projectService,
		scanService:                 scanService,
		accessResolver:              accessResolver,
	}
}

// @Summary Create project from a source archive
// @Param name formData string true "Project name"
// @Param description formData string false "Project description"
// @Param archive formData file true "Zip archive of the project sources"
// @Success 201 {object} dtos.ProjectDTO
// @Router /projects [post]
func (c *ProjectController) Create(ctx shared.Context) error {
	var req dtos.ProjectCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	upload, err := ctx.FormFile("archive")
	if err != nil {
		return echo.NewHTTPError(400, "missing archive upload").WithInternal(err)
	}

	archivePath, err := saveUpload(upload)
	if err != nil {
		return echo.NewHTTPError(500, "could not store upload").WithInternal(err)
	}
	defer os.Remove(archivePath)

	project, err := c.projectService.CreateFromArchive(ctx.Request().Context(), req.Name, req.Description, archivePath)
	if err != nil {
		return echo.NewHTTPError(400, "could not create project").WithInternal(err)
	}

	return ctx.JSON(201, dtos.ProjectToDTO(project))
}

// @Summary List projects visible to the requesting user
// @Success 200 {array} dtos.ProjectDTO
// @Router /projects [get]
func (c *ProjectController) List(ctx shared.Context) error {
	user := shared.GetUser(ctx)

	ids, err := c.accessResolver.AccessibleProjectIDs(user)
	if err != nil {
		return echo.NewHTTPError(500, "could not resolve project access").WithInternal(err)
	}

	projects, err := c.projectRepository.List(ids)
	if err != nil {
		return echo.NewHTTPError(500, "could not list projects").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(projects, dtos.ProjectToDTO))
}

// @Summary Read a project with its analysis results
// @Success 200 {object} models.Project
// @Router /projects/{projectID} [get]
func (c *ProjectController) Read(ctx shared.Context) error {
	project := shared.GetProject(ctx)

	project, err := c.projectRepository.ReadWithResults(project.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not load project results").WithInternal(err)
	}

	return ctx.JSON(200, project)
}

func (c *ProjectController) Delete(ctx shared.Context) error {
	project := shared.GetProject(ctx)

	if err := c.projectService.Delete(project.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete project").WithInternal(err)
	}

	return ctx.NoContent(204)
}

// @Summary Trigger a re-scan of the project sources
// @Success 202 {object} dtos.ScanTriggeredResponse
// @Router /projects/{projectID}/scan [post]
func (c *ProjectController) Scan(ctx shared.Context) error {
	project := shared.GetProject(ctx)

	jobID := c.scanService.TriggerScan(project)

	return ctx.JSON(202, dtos.ScanTriggeredResponse{
		ProjectID: project.ID,
		JobID:     jobID,
	})
}

func (c *ProjectController) RiskLevel(ctx shared.Context) error {
	project := shared.GetProject(ctx)

	level, err := c.projectService.RiskLevel(project.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not compute risk level").WithInternal(err)
	}

	return ctx.JSON(200, dtos.RiskLevelDTO{
		ProjectID: project.ID,
		RiskLevel: level,
	})
}

func (c *ProjectController) Lines(ctx shared.Context) error {
	project := shared.GetProject(ctx)

	linesCount, err := c.linesCountRepository.ReadByProjectID(project.ID)
	if err != nil {
		return echo.NewHTTPError(404, "no lines count for project").WithInternal(err)
	}

	return ctx.JSON(200, dtos.LinesCountToDTO(linesCount))
}

// @Summary Languages of the project by code count, descending
// @Param n query int false "Number of languages, default 3"
// @Success 200 {array} dtos.LanguageLinesCountDTO
// @Router /projects/{projectID}/top-languages [get]
func (c *ProjectController) TopLanguages(ctx shared.Context) error {
	project := shared.GetProject(ctx)

	n := 3
	if raw := ctx.QueryParam("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(400, "n must be an integer").WithInternal(err)
		}
		n = parsed
	}

	linesCount, err := c.linesCountRepository.ReadByProjectID(project.ID)
	if err != nil {
		return echo.NewHTTPError(404, "no lines count for project").WithInternal(err)
	}

	top := linecount.TopLanguages(linesCount, n)
	return ctx.JSON(200, utils.Map(top, func(count models.LanguageLinesCount) dtos.LanguageLinesCountDTO {
		return dtos.LanguageLinesCountToDTO(count)
	}))
}

// @Summary Supported languages detected in the project sources
// @Success 200 {array} string
// @Router /projects/{projectID}/languages [get]
func (c *ProjectController) Languages(ctx shared.Context) error {
	project := shared.GetProject(ctx)

	linesCount, err := c.linesCountRepository.ReadByProjectID(project.ID)
	if err != nil {
		return echo.NewHTTPError(404, "no lines count for project").WithInternal(err)
	}

	supported, err := c.supportedLanguageRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not load supported languages").WithInternal(err)
	}

	detected := linecount.TopSupportedLanguages(linesCount, supported)
	return ctx.JSON(200, utils.Map(detected, func(language models.SupportedLanguage) string {
		return language.Name
	}))
}

func saveUpload(upload *multipart.FileHeader) (string, error) {
	src, err := upload.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dest, err := os.CreateTemp("", "codetrail-upload-*.zip")
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dest, src); err != nil {
		dest.Close()
		os.Remove(dest.Name())
		return "", err
	}
	if err := dest.Close(); err != nil {
		os.Remove(dest.Name())
		return "", err
	}
	return dest.Name(), nil
}
