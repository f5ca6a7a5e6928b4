// models/team_member.go
package models

import "time"

type TeamRole string

const (
	TeamRoleLeader TeamRole = "leader"
	TeamRoleMember TeamRole = "member"
)

// Valid reports whether r is one of the known team roles.
func (r TeamRole) Valid() bool {
	return r == TeamRoleLeader || r == TeamRoleMember
}

// TeamMember is one (team, user) edge. The composite unique index is the
// source of truth for membership uniqueness; service-level checks are only
// an early exit.
type TeamMember struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	TeamID   uint      `json:"team_id" gorm:"not null;uniqueIndex:idx_team_members_pair"`
	Team     *Team     `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	UserID   uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_team_members_pair"`
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Role     TeamRole  `json:"role" gorm:"not null;default:'member'"`
	JoinedAt time.Time `json:"joined_at" gorm:"not null"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
