package services

import (
	"context"
	"fmt"

	"github.com/kappatrack/kappatrack/kappatrack/database/models"
	"github.com/kappatrack/kappatrack/kappatrack/database/repositories"
)

type NoteService struct {
	noteRepo repositories.NoteRepository
}

func NewNoteService(noteRepo repositories.NoteRepository) *NoteService {
	return &NoteService{noteRepo: noteRepo}
}

// Get returns the user's note, or an empty note when none is stored.
func (s *NoteService) Get(ctx context.Context, userID int64) (*models.UserNote, error) {
	note, err := s.noteRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load note: %w", err)
	}
	if note == nil {
		return &models.UserNote{UserID: userID, Content: ""}, nil
	}
	return note, nil
}

// Save stores the user's note, overwriting any previous content.
func (s *NoteService) Save(ctx context.Context, userID int64, content string) (*models.UserNote, error) {
	note, err := s.noteRepo.Upsert(ctx, userID, content)
	if err != nil {
		return nil, fmt.Errorf("failed to save note: %w", err)
	}
	return note, nil
}
