package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tamdao/mytask/domain"
)

// CreateNoteFolder creates a note folder for the owner.
func (s *Service) CreateNoteFolder(ctx context.Context, ownerID string, req domain.NoteFolderRequest) (*domain.NoteFolder, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationf("folder name is required")
	}

	f := &domain.NoteFolder{
		ID:        newID("fld"),
		OwnerID:   ownerID,
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := s.store.CreateNoteFolder(ctx, f); err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}
	return f, nil
}

// ListNoteFolders lists the owner's folders.
func (s *Service) ListNoteFolders(ctx context.Context, ownerID string) ([]domain.NoteFolder, error) {
	return s.store.ListNoteFolders(ctx, ownerID)
}

// CreateNote creates a note, optionally filed in a folder.
func (s *Service) CreateNote(ctx context.Context, ownerID string, req domain.NoteRequest) (*domain.Note, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, validationf("note title is required")
	}

	n := &domain.Note{
		ID:        newID("nte"),
		OwnerID:   ownerID,
		FolderID:  req.FolderID,
		Title:     title,
		Content:   req.Content,
		Pinned:    req.Pinned,
		CreatedAt: time.Now(),
	}
	if err := s.store.CreateNote(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return n, nil
}

// ListNotes lists the owner's notes, newest first.
func (s *Service) ListNotes(ctx context.Context, ownerID string) ([]domain.Note, error) {
	return s.store.ListNotes(ctx, ownerID)
}
