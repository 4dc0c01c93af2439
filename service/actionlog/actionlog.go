package actionlog

import (
	"gorm.io/gorm"

	"warehouse.GO/config"
	"warehouse.GO/model/entity"
	actionlogRepo "warehouse.GO/model/repository/actionlog"
)

// Record appends one action log entry for a mutation that already
// happened. It is called explicitly from lifecycle and CRUD code, always
// after the primary write. Failures are logged and swallowed: the log is
// best-effort and must never block or undo the primary mutation.
func Record(db *gorm.DB, entityName, snapshot string, action entity.LogAction) {
	e := &entity.ActionLogEntry{
		Entity:   entityName,
		Snapshot: snapshot,
		Action:   action,
	}
	if err := db.Create(e).Error; err != nil {
		config.LogError(config.GetLogger(), "actionlog", "Record", entityName, err)
	}
}

// RecordAll appends one entry per item, same action.
func RecordAll(db *gorm.DB, entityName string, snapshots []string, action entity.LogAction) {
	for _, s := range snapshots {
		Record(db, entityName, s, action)
	}
}

// List returns a page of entries, newest first.
func List(db *gorm.DB, page, pageSize int) ([]entity.ActionLogEntry, error) {
	return actionlogRepo.NewActionLogRepository(db).List(page, pageSize)
}
