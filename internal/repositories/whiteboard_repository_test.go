package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	apperrors "project-hub.com/project-hub/internal/errors"
)

func TestWhiteboardRepository_LazyEmptyBoard(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWhiteboardRepository(db)
	ctx := context.Background()

	project := createProject(t, db, "Launch")

	board, err := repo.Get(ctx, project.ID)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(board.DrawingData))

	again, err := repo.Get(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, board.ID, again.ID)
	assert.EqualValues(t, 1, count(t, db, "whiteboards", "project_id = ?", project.ID))
}

func TestWhiteboardRepository_SaveDrawing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWhiteboardRepository(db)
	ctx := context.Background()

	project := createProject(t, db, "Launch")
	drawing := datatypes.JSON(`{"elements":[{"type":"rectangle","x":10}]}`)

	saved, err := repo.SaveDrawing(ctx, project.ID, drawing)
	require.NoError(t, err)
	assert.JSONEq(t, string(drawing), string(saved.DrawingData))

	board, err := repo.Get(ctx, project.ID)
	require.NoError(t, err)
	assert.JSONEq(t, string(drawing), string(board.DrawingData))
	assert.Equal(t, saved.ID, board.ID)

	_, err = repo.SaveDrawing(ctx, 9191, drawing)
	assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
}
