package entity

import "time"

// LogAction is the kind of mutation recorded in the action log.
type LogAction string

const (
	ActionCreate LogAction = "create"
	ActionUpdate LogAction = "update"
	ActionDelete LogAction = "delete"
)

// ActionLogEntry is one append-only record of an entity mutation. It
// carries no foreign keys so it stays readable after the source row is
// deleted, and is never updated or deleted once written.
type ActionLogEntry struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Entity    string    `gorm:"column:entity;type:varchar(132);not null" json:"entity"`
	Snapshot  string    `gorm:"column:snapshot;type:text;not null" json:"snapshot"`
	Action    LogAction `gorm:"column:action;type:varchar(16);not null" json:"action"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ActionLogEntry) TableName() string {
	return "action_log"
}
