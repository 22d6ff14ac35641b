package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteGetDefault(t *testing.T) {
	svc := NewNoteService(newFakeNoteRepo())

	note, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), note.UserID)
	assert.Empty(t, note.Content)
}

func TestNoteSaveOverwrites(t *testing.T) {
	svc := NewNoteService(newFakeNoteRepo())
	ctx := context.Background()

	_, err := svc.Save(ctx, 1, "first draft")
	require.NoError(t, err)

	note, err := svc.Save(ctx, 1, "second draft")
	require.NoError(t, err)
	assert.Equal(t, "second draft", note.Content)

	stored, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "second draft", stored.Content)
}
