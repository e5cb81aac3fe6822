package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SharedTitleSuffix is appended to the title of record copies delivered
// to linked family accounts.
const SharedTitleSuffix = " (Shared from family)"

// MemoryType enumerates the supported kinds of memory records.
type MemoryType string

const (
	TypeJournal    MemoryType = "journal"
	TypeDocument   MemoryType = "document"
	TypeAsset      MemoryType = "asset"
	TypeInsurance  MemoryType = "insurance"
	TypeMedication MemoryType = "medication"
	TypeAddress    MemoryType = "address"
	TypeKeyDate    MemoryType = "key_date"
	TypeOtherNote  MemoryType = "othernote"
)

// MemoryTypes lists every valid memory type.
var MemoryTypes = []MemoryType{
	TypeJournal, TypeDocument, TypeAsset, TypeInsurance,
	TypeMedication, TypeAddress, TypeKeyDate, TypeOtherNote,
}

// ParseMemoryType validates a raw data_type value.
func ParseMemoryType(s string) (MemoryType, error) {
	for _, t := range MemoryTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown data_type %q", s)
}

// MemoryDB represents a user_data row. Rows are insert-only: records are
// never updated, only deleted individually or in bulk per owner.
type MemoryDB struct {
	ID        int64      `json:"id" db:"id"`                 // Primary key, insertion order
	UserID    uuid.UUID  `json:"user_id" db:"user_id"`       // Owning account
	DataType  MemoryType `json:"data_type" db:"data_type"`   // Record kind
	Title     string     `json:"title" db:"title"`           // Short label
	Content   string     `json:"content" db:"content"`       // Free text plus appended detail fields
	Date      *time.Time `json:"date,omitempty" db:"date"`   // Optional reminder date
	Time      *string    `json:"time,omitempty" db:"time"`   // Optional reminder time, "HH:MM"
	VoiceNote []byte     `json:"voice_note,omitempty" db:"voice_note"` // Optional audio blob
	FileData  []byte     `json:"file_data,omitempty" db:"file_data"`   // Optional file blob
	FileName  *string    `json:"file_name,omitempty" db:"file_name"`   // Name of the attached file
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// DateString returns the record date as YYYY-MM-DD, or "" when unset.
// Search matches the query against this form.
func (m *MemoryDB) DateString() string {
	if m.Date == nil {
		return ""
	}
	return m.Date.Format("2006-01-02")
}

// MemoryDetails is the variant payload attached to a typed record.
// Types with mandatory structured fields (insurance, medication) declare
// them as a concrete variant; the remaining types carry no details.
type MemoryDetails interface {
	DataType() MemoryType
	Validate() error
	AppendTo(content string) string
}

// InsuranceDetails are the mandatory fields for insurance records.
type InsuranceDetails struct {
	MonthlyDueDate time.Time `json:"monthly_due_date"`
	MaturityDate   time.Time `json:"maturity_date"`
}

func (d InsuranceDetails) DataType() MemoryType { return TypeInsurance }

func (d InsuranceDetails) Validate() error {
	if d.MonthlyDueDate.IsZero() {
		return errors.New("insurance record requires monthly_due_date")
	}
	if d.MaturityDate.IsZero() {
		return errors.New("insurance record requires maturity_date")
	}
	return nil
}

func (d InsuranceDetails) AppendTo(content string) string {
	return content + fmt.Sprintf("\nMonthly Due: %s, Maturity: %s",
		d.MonthlyDueDate.Format("2006-01-02"), d.MaturityDate.Format("2006-01-02"))
}

// MedicationDetails are the mandatory fields for medication records.
type MedicationDetails struct {
	MedName string `json:"med_name"`
	Dosage  string `json:"dosage"`
}

func (d MedicationDetails) DataType() MemoryType { return TypeMedication }

func (d MedicationDetails) Validate() error {
	if d.MedName == "" {
		return errors.New("medication record requires med_name")
	}
	if d.Dosage == "" {
		return errors.New("medication record requires dosage")
	}
	return nil
}

func (d MedicationDetails) AppendTo(content string) string {
	return content + fmt.Sprintf("\nMedication: %s, Dosage: %s", d.MedName, d.Dosage)
}

// BuildContent validates the variant payload against the record type and
// returns the final stored content with the detail fields appended.
// Types with mandatory details reject a missing payload; other types
// reject a stray one.
func BuildContent(dataType MemoryType, content string, details MemoryDetails) (string, error) {
	switch dataType {
	case TypeInsurance, TypeMedication:
		if details == nil {
			return "", fmt.Errorf("%s record requires detail fields", dataType)
		}
	default:
		if details != nil {
			return "", fmt.Errorf("%s record does not take detail fields", dataType)
		}
		return content, nil
	}

	if details.DataType() != dataType {
		return "", fmt.Errorf("detail fields for %s do not match record type %s",
			details.DataType(), dataType)
	}
	if err := details.Validate(); err != nil {
		return "", err
	}
	return details.AppendTo(content), nil
}

// ValidateClock checks the optional "HH:MM" reminder time.
func ValidateClock(clock string) error {
	if _, err := time.Parse("15:04", clock); err != nil {
		return fmt.Errorf("invalid time %q, want HH:MM", clock)
	}
	return nil
}
