package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mkobayashi/todo-web-api/internal/dto"
	"github.com/mkobayashi/todo-web-api/internal/models"
	"github.com/stretchr/testify/assert"
)

// Sub-item routes share the suite from todo_test.go.

func (suite *TodoHandlerTestSuite) createItemFor(token string) dto.ItemVM {
	w := suite.request("POST", "/api/todo", token, itemBody("Buy milk", models.StatusOpen))
	suite.Require().Equal(http.StatusOK, w.Code)

	var created dto.ItemVM
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	return created
}

// TestCreateSubItem_OnOwnItem verifies attaching a sub-item to the caller's item
func (suite *TodoHandlerTestSuite) TestCreateSubItem_OnOwnItem() {
	user := suite.createTestUser("test@example.com", models.RoleUser)
	token := suite.tokenFor(user)
	item := suite.createItemFor(token)

	w := suite.request("POST", "/api/subitem", token, map[string]interface{}{
		"description": "Check the fridge first",
		"itemId":      item.ID,
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	var created dto.SubItemVM
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(suite.T(), created.ID)
	assert.Equal(suite.T(), item.ID, created.ItemID)
}

// TestCreateSubItem_OnOtherUsersItem verifies a foreign parent item reads as absent
func (suite *TodoHandlerTestSuite) TestCreateSubItem_OnOtherUsersItem() {
	alice := suite.createTestUser("alice@example.com", models.RoleUser)
	bob := suite.createTestUser("bob@example.com", models.RoleUser)
	item := suite.createItemFor(suite.tokenFor(alice))

	w := suite.request("POST", "/api/subitem", suite.tokenFor(bob), map[string]interface{}{
		"description": "Bob should not see this",
		"itemId":      item.ID,
	})
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	var count int64
	suite.db.Model(&models.SubItem{}).Count(&count)
	assert.Zero(suite.T(), count)
}

// TestCreateSubItem_InvalidBody verifies a missing parent id is a 400
func (suite *TodoHandlerTestSuite) TestCreateSubItem_InvalidBody() {
	user := suite.createTestUser("test@example.com", models.RoleUser)

	w := suite.request("POST", "/api/subitem", suite.tokenFor(user), map[string]interface{}{
		"description": "orphan",
	})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestDeleteSubItem_RemovesIt verifies deletion and that the item survives
func (suite *TodoHandlerTestSuite) TestDeleteSubItem_RemovesIt() {
	user := suite.createTestUser("test@example.com", models.RoleUser)
	token := suite.tokenFor(user)
	item := suite.createItemFor(token)

	w := suite.request("POST", "/api/subitem", token, map[string]interface{}{
		"description": "Check the fridge first",
		"itemId":      item.ID,
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	var created dto.SubItemVM
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))

	w = suite.request("DELETE", fmt.Sprintf("/api/subitem/%d", created.ID), token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.request("GET", fmt.Sprintf("/api/todo/%d", item.ID), token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var fetched dto.ItemVM
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Empty(suite.T(), fetched.SubItems)
}

// TestDeleteSubItem_AbsentIdIsSuccess verifies the idempotent delete contract
func (suite *TodoHandlerTestSuite) TestDeleteSubItem_AbsentIdIsSuccess() {
	user := suite.createTestUser("test@example.com", models.RoleUser)

	w := suite.request("DELETE", "/api/subitem/9999", suite.tokenFor(user), nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}
