package services

import (
	"testing"
	"tododuk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLabel(t *testing.T) {
	db := newTestDB(t)
	svc := NewLabelService(db)

	label, err := svc.CreateLabel("urgent", "#ff0000")
	require.NoError(t, err)
	assert.NotZero(t, label.ID)

	_, err = svc.CreateLabel("", "#fff")
	assert.Equal(t, "400-1", resultCode(t, err))
}

func TestGetLabelsSorted(t *testing.T) {
	db := newTestDB(t)
	svc := NewLabelService(db)

	_, err := svc.CreateLabel("zeta", "")
	require.NoError(t, err)
	_, err = svc.CreateLabel("alpha", "")
	require.NoError(t, err)

	labels, err := svc.GetLabels()
	require.NoError(t, err)
	require.Len(t, labels, 2)
	assert.Equal(t, "alpha", labels[0].Name)
	assert.Equal(t, "zeta", labels[1].Name)
}

func TestSetTodoLabelsIdempotent(t *testing.T) {
	db := newTestDB(t)
	labels := NewLabelService(db)
	todos := NewTodoService(db)

	user := createTestUser(t, db, "alice@example.com")
	todo, err := todos.CreateTodo(user.ID, PersonalScope, "tagged", "", 0, nil, nil)
	require.NoError(t, err)

	a, err := labels.CreateLabel("a", "")
	require.NoError(t, err)
	b, err := labels.CreateLabel("b", "")
	require.NoError(t, err)

	// Applying the same set twice leaves exactly that set, no duplicates.
	require.NoError(t, labels.SetTodoLabels(todo.ID, []uint{a.ID, b.ID}))
	require.NoError(t, labels.SetTodoLabels(todo.ID, []uint{a.ID, b.ID}))

	ids, err := labels.GetTodoLabelIDs(todo.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{a.ID, b.ID}, ids)

	// Duplicate ids in the request collapse to one association.
	require.NoError(t, labels.SetTodoLabels(todo.ID, []uint{a.ID, a.ID}))
	ids, err = labels.GetTodoLabelIDs(todo.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{a.ID}, ids)
}

func TestSetTodoLabelsReplacesWholesale(t *testing.T) {
	db := newTestDB(t)
	labels := NewLabelService(db)
	todos := NewTodoService(db)

	user := createTestUser(t, db, "alice@example.com")
	todo, err := todos.CreateTodo(user.ID, PersonalScope, "tagged", "", 0, nil, nil)
	require.NoError(t, err)

	a, err := labels.CreateLabel("a", "")
	require.NoError(t, err)
	b, err := labels.CreateLabel("b", "")
	require.NoError(t, err)
	c, err := labels.CreateLabel("c", "")
	require.NoError(t, err)

	require.NoError(t, labels.SetTodoLabels(todo.ID, []uint{a.ID, b.ID}))
	require.NoError(t, labels.SetTodoLabels(todo.ID, []uint{c.ID}))

	ids, err := labels.GetTodoLabelIDs(todo.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{c.ID}, ids)

	// Empty set clears all associations.
	require.NoError(t, labels.SetTodoLabels(todo.ID, nil))
	ids, err = labels.GetTodoLabelIDs(todo.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestSetTodoLabelsUnknownTargets(t *testing.T) {
	db := newTestDB(t)
	labels := NewLabelService(db)
	todos := NewTodoService(db)

	user := createTestUser(t, db, "alice@example.com")
	todo, err := todos.CreateTodo(user.ID, PersonalScope, "tagged", "", 0, nil, nil)
	require.NoError(t, err)

	err = labels.SetTodoLabels(todo.ID, []uint{9999})
	assert.Equal(t, "404-LABEL_NOT_FOUND", resultCode(t, err))

	err = labels.SetTodoLabels(9999, nil)
	assert.Equal(t, "404-TODO_NOT_FOUND", resultCode(t, err))
}

func TestDeleteLabelRemovesAssociations(t *testing.T) {
	db := newTestDB(t)
	labels := NewLabelService(db)
	todos := NewTodoService(db)

	user := createTestUser(t, db, "alice@example.com")
	todo, err := todos.CreateTodo(user.ID, PersonalScope, "tagged", "", 0, nil, nil)
	require.NoError(t, err)

	a, err := labels.CreateLabel("a", "")
	require.NoError(t, err)
	b, err := labels.CreateLabel("b", "")
	require.NoError(t, err)
	require.NoError(t, labels.SetTodoLabels(todo.ID, []uint{a.ID, b.ID}))

	require.NoError(t, labels.DeleteLabel(a.ID))

	ids, err := labels.GetTodoLabelIDs(todo.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{b.ID}, ids)

	var joins int64
	db.Model(&models.TodoLabel{}).Where("label_id = ?", a.ID).Count(&joins)
	assert.Zero(t, joins)

	err = labels.DeleteLabel(a.ID)
	assert.Equal(t, "404-LABEL_NOT_FOUND", resultCode(t, err))
}
