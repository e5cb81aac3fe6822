package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/segmentio/kafka-go"

	"github.com/Kaviya-Shalini/memolink/internal/logger"
	"github.com/Kaviya-Shalini/memolink/internal/models"
)

var (
	// ErrDuplicateMemory is returned when the exact 6-tuple of a record
	// already exists for the owner.
	ErrDuplicateMemory = errors.New("duplicate memory detected")

	// ErrInvalidMemory wraps validation failures of the add input.
	ErrInvalidMemory = errors.New("invalid memory")
)

// dueWindow is how far in the past a reminder still counts as "due now".
const dueWindow = 60 * time.Second

// MemoryWriter defines user_data write operations.
type MemoryWriter interface {
	Save(ctx context.Context, rec *models.MemoryDB) (int64, error)                 // Inserts one row, returns its id
	Delete(ctx context.Context, userID uuid.UUID, id int64) (bool, error)          // Deletes an owner's row by id, false when absent
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error)          // Deletes every row of one owner
}

// MemoryReader defines user_data read operations.
type MemoryReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID, dataType *models.MemoryType) ([]models.MemoryDB, error)
	Exists(ctx context.Context, userID uuid.UUID, dataType models.MemoryType, title, content string, date *time.Time, clock *string) (bool, error)
}

// ShareTargetReader resolves the accounts that receive a copy when an
// owner adds a record.
type ShareTargetReader interface {
	LinkedBy(ctx context.Context, userID uuid.UUID) ([]models.FamilyMember, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AddMemoryInput carries the validated-on-entry fields of an add request.
// Exactly one variant payload may be set, and only for its record type.
type AddMemoryInput struct {
	DataType   string
	Title      string
	Content    string
	Date       *time.Time
	Time       *string
	VoiceNote  []byte
	FileData   []byte
	FileName   *string
	Insurance  *models.InsuranceDetails
	Medication *models.MedicationDetails
}

// MemoryService handles record storage, family sharing, search and
// reminder lookups, publishing an audit event per mutation.
type MemoryService struct {
	writeRepo   MemoryWriter
	readRepo    MemoryReader
	linkedRepo  ShareTargetReader
	kafkaWriter KafkaWriter
}

// NewMemoryService creates a new MemoryService.
func NewMemoryService(
	writeRepo MemoryWriter,
	readRepo MemoryReader,
	linkedRepo ShareTargetReader,
	kafkaWriter KafkaWriter,
) *MemoryService {
	return &MemoryService{
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		linkedRepo:  linkedRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a memory event to Kafka, best-effort.
func (s *MemoryService) publishEvent(ctx context.Context, ev models.MemoryEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", ev.EventID)
		return
	}

	data, err := json.Marshal(ev)
	if err != nil {
		logger.Log.Errorw("Failed to marshal memory event for Kafka", "event_id", ev.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(ev.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish memory event to Kafka", "event_id", ev.EventID, "error", err)
	} else {
		logger.Log.Infow("Memory event published to Kafka", "event_id", ev.EventID, "operation", ev.Operation)
	}
}

func (s *MemoryService) event(userID uuid.UUID, recordID int64, title, op string) models.MemoryEvent {
	return models.MemoryEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID.String(),
		RecordID:  recordID,
		Title:     title,
		Operation: op,
	}
}

func (in *AddMemoryInput) details() (models.MemoryDetails, error) {
	if in.Insurance != nil && in.Medication != nil {
		return nil, fmt.Errorf("%w: at most one of insurance/medication details may be set", ErrInvalidMemory)
	}
	if in.Insurance != nil {
		return *in.Insurance, nil
	}
	if in.Medication != nil {
		return *in.Medication, nil
	}
	return nil, nil
}

// Add validates and inserts a record for userID, then inserts one copy
// per account that linked itself to userID, with the shared-title
// suffix and identical content, date, time and attachments. The caller
// runs the whole flow inside one request-scoped transaction, so the
// primary insert and every share commit or roll back together.
func (s *MemoryService) Add(ctx context.Context, userID uuid.UUID, in AddMemoryInput) (*models.MemoryDB, error) {
	dataType, err := models.ParseMemoryType(in.DataType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMemory, err)
	}
	if in.Title == "" || in.Content == "" {
		return nil, fmt.Errorf("%w: title and content are required", ErrInvalidMemory)
	}
	if in.Time != nil {
		if err := models.ValidateClock(*in.Time); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMemory, err)
		}
	}

	details, err := in.details()
	if err != nil {
		return nil, err
	}
	content, err := models.BuildContent(dataType, in.Content, details)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMemory, err)
	}

	exists, err := s.readRepo.Exists(ctx, userID, dataType, in.Title, content, in.Date, in.Time)
	if err != nil {
		logger.Log.Errorw("failed to check duplicate memory", "user_id", userID, "error", err)
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateMemory
	}

	rec := &models.MemoryDB{
		UserID:    userID,
		DataType:  dataType,
		Title:     in.Title,
		Content:   content,
		Date:      in.Date,
		Time:      in.Time,
		VoiceNote: in.VoiceNote,
		FileData:  in.FileData,
		FileName:  in.FileName,
	}

	id, err := s.writeRepo.Save(ctx, rec)
	if err != nil {
		logger.Log.Errorw("failed to save memory", "user_id", userID, "error", err)
		return nil, err
	}
	rec.ID = id

	linked, err := s.linkedRepo.LinkedBy(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to resolve share targets", "user_id", userID, "error", err)
		return nil, err
	}

	for _, member := range linked {
		shared := &models.MemoryDB{
			UserID:    member.UserID,
			DataType:  dataType,
			Title:     in.Title + models.SharedTitleSuffix,
			Content:   content,
			Date:      in.Date,
			Time:      in.Time,
			VoiceNote: in.VoiceNote,
			FileData:  in.FileData,
			FileName:  in.FileName,
		}

		sharedID, err := s.writeRepo.Save(ctx, shared)
		if err != nil {
			logger.Log.Errorw("failed to share memory", "user_id", userID, "target", member.UserID, "error", err)
			return nil, err
		}
		s.publishEvent(ctx, s.event(member.UserID, sharedID, shared.Title, models.EventOpShare))
	}

	s.publishEvent(ctx, s.event(userID, id, rec.Title, models.EventOpAdd))

	return rec, nil
}

// List returns the owner's records, most recent first. typeFilter may
// name a data_type to narrow the listing.
func (s *MemoryService) List(ctx context.Context, userID uuid.UUID, typeFilter string) ([]models.MemoryDB, error) {
	var dataType *models.MemoryType
	if typeFilter != "" {
		parsed, err := models.ParseMemoryType(typeFilter)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMemory, err)
		}
		dataType = &parsed
	}

	records, err := s.readRepo.ListByUser(ctx, userID, dataType)
	if err != nil {
		logger.Log.Errorw("failed to list memories", "user_id", userID, "error", err)
		return nil, err
	}
	return records, nil
}

// Search returns the owner's records matching query, preserving the
// listing order. An empty query returns everything. The default mode is
// a case-insensitive containment test against title, content and the
// stringified date; useFuzzy switches to normalized fuzzy matching of
// title and content. typeFilter narrows the candidates the same way it
// does for List.
func (s *MemoryService) Search(ctx context.Context, userID uuid.UUID, typeFilter, query string, useFuzzy bool) ([]models.MemoryDB, error) {
	records, err := s.List(ctx, userID, typeFilter)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return records, nil
	}

	if useFuzzy {
		return lo.Filter(records, func(r models.MemoryDB, _ int) bool {
			return fuzzy.MatchNormalizedFold(query, r.Title) ||
				fuzzy.MatchNormalizedFold(query, r.Content) ||
				strings.Contains(r.DateString(), query)
		}), nil
	}

	q := strings.ToLower(query)
	return lo.Filter(records, func(r models.MemoryDB, _ int) bool {
		return strings.Contains(strings.ToLower(r.Title), q) ||
			strings.Contains(strings.ToLower(r.Content), q) ||
			strings.Contains(r.DateString(), q)
	}), nil
}

// DueReminders returns the records whose reminder moment (date + time)
// fell within the last minute before now. Records without both a date
// and a time never become due.
func (s *MemoryService) DueReminders(ctx context.Context, userID uuid.UUID, now time.Time) ([]models.MemoryDB, error) {
	records, err := s.readRepo.ListByUser(ctx, userID, nil)
	if err != nil {
		logger.Log.Errorw("failed to list memories for reminders", "user_id", userID, "error", err)
		return nil, err
	}

	return lo.Filter(records, func(r models.MemoryDB, _ int) bool {
		if r.Date == nil || r.Time == nil {
			return false
		}
		clock, err := time.Parse("15:04", *r.Time)
		if err != nil {
			return false
		}
		due := time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(),
			clock.Hour(), clock.Minute(), 0, 0, now.Location())
		elapsed := now.Sub(due)
		return elapsed >= 0 && elapsed <= dueWindow
	}), nil
}

// Delete removes one record by id. The second delete of the same id
// reports false without an error.
func (s *MemoryService) Delete(ctx context.Context, userID uuid.UUID, id int64) (bool, error) {
	deleted, err := s.writeRepo.Delete(ctx, userID, id)
	if err != nil {
		logger.Log.Errorw("failed to delete memory", "id", id, "error", err)
		return false, err
	}
	if deleted {
		s.publishEvent(ctx, s.event(userID, id, "", models.EventOpDelete))
	}
	return deleted, nil
}

// DeleteAll removes every record owned by userID.
func (s *MemoryService) DeleteAll(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.writeRepo.DeleteAllByUser(ctx, userID); err != nil {
		logger.Log.Errorw("failed to delete all memories", "user_id", userID, "error", err)
		return err
	}
	s.publishEvent(ctx, s.event(userID, 0, "", models.EventOpClear))
	return nil
}
