package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	model "project-hub.com/project-hub/internal/models"
)

func all() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "0001_identities_and_profiles",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&model.User{}, &model.Profile{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(&model.Profile{}, &model.User{})
			},
		},
		{
			ID: "0002_projects_tasks_whiteboards",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&model.Project{}, &model.Task{}, &model.Whiteboard{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(
					"task_assignees",
					&model.Task{},
					&model.Whiteboard{},
					"project_team_members",
					&model.Project{},
				)
			},
		},
		{
			ID: "0003_project_status_logs",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&model.ProjectStatusLog{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(&model.ProjectStatusLog{})
			},
		},
		{
			ID: "0004_notifications",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&model.Notification{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(&model.Notification{})
			},
		},
	}
}

func Migrate(db *gorm.DB) error {
	return gormigrate.New(db, gormigrate.DefaultOptions, all()).Migrate()
}

func RollbackLast(db *gorm.DB) error {
	return gormigrate.New(db, gormigrate.DefaultOptions, all()).RollbackLast()
}
