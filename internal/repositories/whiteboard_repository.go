package repository

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "project-hub.com/project-hub/internal/errors"
	model "project-hub.com/project-hub/internal/models"
)

type WhiteboardRepository struct {
	db *gorm.DB
}

func NewWhiteboardRepository(db *gorm.DB) *WhiteboardRepository {
	return &WhiteboardRepository{db: db}
}

// Get returns the project's whiteboard, creating an empty one on first use.
func (r *WhiteboardRepository) Get(ctx context.Context, projectID uint) (*model.Whiteboard, error) {
	return r.getOrCreate(r.db.WithContext(ctx), projectID)
}

func (r *WhiteboardRepository) SaveDrawing(ctx context.Context, projectID uint, drawing datatypes.JSON) (*model.Whiteboard, error) {
	var board *model.Whiteboard
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		board, err = r.getOrCreate(tx, projectID)
		if err != nil {
			return err
		}
		return tx.Model(board).Update("drawing_data", drawing).Error
	})
	if err != nil {
		return nil, err
	}
	board.DrawingData = drawing
	return board, nil
}

func (r *WhiteboardRepository) getOrCreate(db *gorm.DB, projectID uint) (*model.Whiteboard, error) {
	var board model.Whiteboard
	err := db.Where(model.Whiteboard{ProjectID: projectID}).
		Attrs(model.Whiteboard{DrawingData: model.EmptyDrawing()}).
		FirstOrCreate(&board).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return nil, apperrors.ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &board, nil
}
