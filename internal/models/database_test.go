package models_test

import (
	"github.com/agenda-pro/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestConnectInvalidDSN() {
	_, err := models.Connect("/this/path/does/not/exist/database.db")
	assert.NotNil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestBeforeCreateSetsID() {
	event := suite.createTestEvent(models.Event{})
	assert.NotEqual(suite.T(), uuid.Nil, event.ID)
}

func (suite *TestSuiteStandard) TestBeforeCreateKeepsID() {
	id := uuid.New()
	event := suite.createTestEvent(models.Event{DefaultModel: models.DefaultModel{ID: id}})
	assert.Equal(suite.T(), id, event.ID)
}

func (suite *TestSuiteStandard) TestNotFoundMessage() {
	var event models.Event
	err := suite.db.First(&event, uuid.New()).Error

	require.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no event matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestClosedDBReturnsGeneralError() {
	suite.CloseDB()

	var event models.Event
	err := suite.db.First(&event, uuid.New()).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
