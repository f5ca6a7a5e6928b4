package services

import (
	"testing"
	"tododuk/models"
	"tododuk/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTeamMakesCreatorLeader(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)
	members := NewTeamMemberService(db)

	creator := createTestUser(t, db, "alice@example.com")

	team, err := svc.CreateTeam("Alpha", "first team", creator.ID)
	require.NoError(t, err)
	require.NotZero(t, team.ID)

	assert.True(t, members.HasRole(team.ID, creator.ID, models.TeamRoleLeader))
	assert.EqualValues(t, 1, members.CountByRole(team.ID, models.TeamRoleLeader))
}

func TestCreateTeamValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)
	creator := createTestUser(t, db, "alice@example.com")

	_, err := svc.CreateTeam("", "no name", creator.ID)
	require.Error(t, err)

	_, err = svc.CreateTeam("Alpha", "ghost creator", 9999)
	require.Error(t, err)
	svcErr, ok := err.(*utils.ServiceError)
	require.True(t, ok)
	assert.Equal(t, "404-USER_NOT_FOUND", svcErr.ResultCode)
}

func TestGetTeamDetailsRequiresMembership(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)

	creator := createTestUser(t, db, "alice@example.com")
	outsider := createTestUser(t, db, "bob@example.com")

	team, err := svc.CreateTeam("Alpha", "", creator.ID)
	require.NoError(t, err)

	_, err = svc.GetTeamDetails(team.ID, outsider.ID)
	require.Error(t, err)
	svcErr, ok := err.(*utils.ServiceError)
	require.True(t, ok)
	assert.Equal(t, "403-NO_PERMISSION", svcErr.ResultCode)

	details, err := svc.GetTeamDetails(team.ID, creator.ID)
	require.NoError(t, err)
	require.Len(t, details.Members, 1)
	assert.Equal(t, creator.ID, details.Members[0].UserID)
}

func TestUpdateTeamInfo(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)
	members := NewTeamMemberService(db)

	leader := createTestUser(t, db, "alice@example.com")
	member := createTestUser(t, db, "bob@example.com")

	team, err := svc.CreateTeam("Alpha", "old description", leader.ID)
	require.NoError(t, err)
	_, err = members.AddTeamMember(team.ID, member.ID, models.TeamRoleMember, leader.ID)
	require.NoError(t, err)

	// Plain members cannot mutate team metadata.
	_, err = svc.UpdateTeamInfo(team.ID, "Beta", "", member.ID)
	require.Error(t, err)
	svcErr, ok := err.(*utils.ServiceError)
	require.True(t, ok)
	assert.Equal(t, "403-NO_PERMISSION", svcErr.ResultCode)

	// Partial update: empty description leaves the old value intact.
	updated, err := svc.UpdateTeamInfo(team.ID, "Beta", "", leader.ID)
	require.NoError(t, err)
	assert.Equal(t, "Beta", updated.Name)
	assert.Equal(t, "old description", updated.Description)
}

// Full lifecycle: create, add member, member cannot delete, leader deletes,
// reads after deletion are not-found.
func TestTeamLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)
	members := NewTeamMemberService(db)

	u1 := createTestUser(t, db, "u1@example.com")
	u2 := createTestUser(t, db, "u2@example.com")

	team, err := svc.CreateTeam("Alpha", "", u1.ID)
	require.NoError(t, err)
	assert.True(t, members.HasRole(team.ID, u1.ID, models.TeamRoleLeader))

	_, err = members.AddTeamMember(team.ID, u2.ID, models.TeamRoleMember, u1.ID)
	require.NoError(t, err)

	err = svc.DeleteTeam(team.ID, u2.ID)
	require.Error(t, err)
	svcErr, ok := err.(*utils.ServiceError)
	require.True(t, ok)
	assert.Equal(t, "403-NO_PERMISSION", svcErr.ResultCode)

	require.NoError(t, svc.DeleteTeam(team.ID, u1.ID))

	_, err = svc.GetTeamDetails(team.ID, u1.ID)
	require.Error(t, err)
	svcErr, ok = err.(*utils.ServiceError)
	require.True(t, ok)
	assert.Equal(t, "404-TEAM_NOT_FOUND", svcErr.ResultCode)

	// Deleting twice is a not-found the second time.
	err = svc.DeleteTeam(team.ID, u1.ID)
	require.Error(t, err)

	// Memberships are gone with the team.
	assert.False(t, members.IsMember(team.ID, u1.ID))
	assert.False(t, members.IsMember(team.ID, u2.ID))
}

func TestDeleteTeamCascadesTodos(t *testing.T) {
	db := newTestDB(t)
	teams := NewTeamService(db)
	todos := NewTodoService(db)
	labels := NewLabelService(db)

	leader := createTestUser(t, db, "alice@example.com")
	team, err := teams.CreateTeam("Alpha", "", leader.ID)
	require.NoError(t, err)

	todo, err := todos.CreateTodo(leader.ID, team.ID, "ship it", "", 0, nil, nil)
	require.NoError(t, err)

	label, err := labels.CreateLabel("urgent", "#ff0000")
	require.NoError(t, err)
	require.NoError(t, labels.SetTodoLabels(todo.ID, []uint{label.ID}))

	require.NoError(t, teams.DeleteTeam(team.ID, leader.ID))

	var todoCount, listCount, joinCount int64
	db.Model(&models.Todo{}).Count(&todoCount)
	db.Model(&models.TodoList{}).Where("team_id = ?", team.ID).Count(&listCount)
	db.Model(&models.TodoLabel{}).Count(&joinCount)
	assert.Zero(t, todoCount)
	assert.Zero(t, listCount)
	assert.Zero(t, joinCount)
}

func TestGetMyTeams(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)

	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	_, err := svc.CreateTeam("Alpha", "", alice.ID)
	require.NoError(t, err)
	_, err = svc.CreateTeam("Beta", "", bob.ID)
	require.NoError(t, err)

	mine, err := svc.GetMyTeams(alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Alpha", mine[0].Name)

	all, err := svc.GetAllTeams()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
