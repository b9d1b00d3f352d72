package services

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"

	apperrors "project-hub.com/project-hub/internal/errors"
	model "project-hub.com/project-hub/internal/models"
	repository "project-hub.com/project-hub/internal/repositories"
)

type WhiteboardService struct {
	boards   *repository.WhiteboardRepository
	projects *repository.ProjectRepository
}

func NewWhiteboardService(boards *repository.WhiteboardRepository, projects *repository.ProjectRepository) *WhiteboardService {
	return &WhiteboardService{boards: boards, projects: projects}
}

func (s *WhiteboardService) Get(ctx context.Context, projectID uint) (*model.Whiteboard, error) {
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.boards.Get(ctx, projectID)
}

// Save replaces the drawing. Only JSON objects are accepted, even though
// the column could hold any JSON value: the board is always an object
// scene, starting from {}. An empty payload resets the board to {}.
func (s *WhiteboardService) Save(ctx context.Context, projectID uint, drawing []byte) (*model.Whiteboard, error) {
	data := model.EmptyDrawing()
	if len(drawing) > 0 {
		var obj map[string]interface{}
		if err := json.Unmarshal(drawing, &obj); err != nil || obj == nil {
			return nil, apperrors.ErrInvalidDrawing
		}
		data = datatypes.JSON(drawing)
	}

	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.boards.SaveDrawing(ctx, projectID, data)
}

func (s *WhiteboardService) requireProject(ctx context.Context, projectID uint) error {
	ok, err := s.projects.Exists(ctx, projectID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrProjectNotFound
	}
	return nil
}
