// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/codetrail-dev/codetrail/mocks"
	"github.com/codetrail-dev/codetrail/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateContext(t *testing.T, body string) shared.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestCreateRuleRepository(t *testing.T) {
	body := `{"name": "community", "uri": "https://example.com/community-rules.git"}`

	t.Run("a name collision reads as a conflict", func(t *testing.T) {
		ruleRepositoryRepository := mocks.NewRuleRepositoryRepository(t)
		ruleRepositoryRepository.On("Create", mock.Anything, mock.Anything).
			Return(errors.New(`ERROR: duplicate key value violates unique constraint "rule_repositories_name_key" (SQLSTATE 23505)`))

		controller := NewRuleRepositoryController(ruleRepositoryRepository, mocks.NewRuleService(t), mocks.NewFireAndForgetSynchronizer(t))

		err := controller.Create(newCreateContext(t, body))

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 409, httpErr.Code)
	})

	t.Run("any other store failure is a server error", func(t *testing.T) {
		ruleRepositoryRepository := mocks.NewRuleRepositoryRepository(t)
		ruleRepositoryRepository.On("Create", mock.Anything, mock.Anything).
			Return(errors.New("connection refused"))

		controller := NewRuleRepositoryController(ruleRepositoryRepository, mocks.NewRuleService(t), mocks.NewFireAndForgetSynchronizer(t))

		err := controller.Create(newCreateContext(t, body))

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 500, httpErr.Code)
	})
}
