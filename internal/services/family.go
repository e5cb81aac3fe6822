package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Kaviya-Shalini/memolink/internal/logger"
	"github.com/Kaviya-Shalini/memolink/internal/models"
)

var (
	// ErrFamilyUserNotFound is returned when the username to link does
	// not resolve to an account.
	ErrFamilyUserNotFound = errors.New("family member username not found")

	// ErrAlreadyLinked is returned when the directed edge already exists.
	ErrAlreadyLinked = errors.New("family member already linked")

	// ErrSelfLink is returned when a user tries to link to themselves.
	ErrSelfLink = errors.New("cannot link to own account")
)

// FamilyWriter defines family_links write operations.
type FamilyWriter interface {
	Save(ctx context.Context, userID, familyID uuid.UUID) error
}

// FamilyReader defines family_links read operations.
type FamilyReader interface {
	Exists(ctx context.Context, userID, familyID uuid.UUID) (bool, error)
	LinkedBy(ctx context.Context, userID uuid.UUID) ([]models.FamilyMember, error)
	Members(ctx context.Context, userID uuid.UUID) ([]models.FamilyMember, error)
}

// FamilyService manages directed family links between accounts.
type FamilyService struct {
	users  UserReader
	reader FamilyReader
	writer FamilyWriter
}

// NewFamilyService creates a new FamilyService.
func NewFamilyService(users UserReader, reader FamilyReader, writer FamilyWriter) *FamilyService {
	return &FamilyService{
		users:  users,
		reader: reader,
		writer: writer,
	}
}

// Link resolves familyUsername and inserts the one-directional edge
// (userID -> family). No reciprocal edge is created: the linking user
// starts receiving copies of the linked account's future records.
func (svc *FamilyService) Link(ctx context.Context, userID uuid.UUID, familyUsername string) error {
	family, err := svc.users.GetByUsername(ctx, familyUsername)
	if err != nil {
		logger.Log.Errorw("failed to resolve family username", "username", familyUsername, "err", err)
		return err
	}
	if family == nil {
		return ErrFamilyUserNotFound
	}
	if family.UserID == userID {
		return ErrSelfLink
	}

	exists, err := svc.reader.Exists(ctx, userID, family.UserID)
	if err != nil {
		logger.Log.Errorw("failed to check family link", "user_id", userID, "family_id", family.UserID, "err", err)
		return err
	}
	if exists {
		return ErrAlreadyLinked
	}

	if err := svc.writer.Save(ctx, userID, family.UserID); err != nil {
		logger.Log.Errorw("failed to save family link", "user_id", userID, "family_id", family.UserID, "err", err)
		return err
	}

	return nil
}

// LinkedBy returns the accounts that linked themselves to userID; those
// accounts receive copies of userID's new records.
func (svc *FamilyService) LinkedBy(ctx context.Context, userID uuid.UUID) ([]models.FamilyMember, error) {
	members, err := svc.reader.LinkedBy(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list linked-by accounts", "user_id", userID, "err", err)
		return nil, err
	}
	return members, nil
}

// Members returns the accounts userID linked themselves to.
func (svc *FamilyService) Members(ctx context.Context, userID uuid.UUID) ([]models.FamilyMember, error) {
	members, err := svc.reader.Members(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list family members", "user_id", userID, "err", err)
		return nil, err
	}
	return members, nil
}
