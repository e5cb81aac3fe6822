package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Kaviya-Shalini/memolink/internal/logger"
	"github.com/Kaviya-Shalini/memolink/internal/middlewares"
	"github.com/Kaviya-Shalini/memolink/internal/models"
	"github.com/Kaviya-Shalini/memolink/internal/services"
)

// MemoryAdder defines the interface that the add-memory service must implement.
type MemoryAdder interface {
	Add(ctx context.Context, userID uuid.UUID, in services.AddMemoryInput) (*models.MemoryDB, error)
}

// InsuranceFields carry the mandatory detail fields of an insurance record
// swagger:model InsuranceFields
type InsuranceFields struct {
	// Monthly due date, YYYY-MM-DD
	// required: true
	MonthlyDueDate string `json:"monthly_due_date"`

	// Maturity date, YYYY-MM-DD
	// required: true
	MaturityDate string `json:"maturity_date"`
}

// MedicationFields carry the mandatory detail fields of a medication record
// swagger:model MedicationFields
type MedicationFields struct {
	// Medication name
	// required: true
	MedName string `json:"med_name"`

	// Dosage
	// required: true
	Dosage string `json:"dosage"`
}

// AddMemoryRequest represents the JSON body for adding a memory record.
// Binary attachments travel base64-encoded.
// swagger:model AddMemoryRequest
type AddMemoryRequest struct {
	// Record kind: journal, document, asset, insurance, medication, address, key_date, othernote
	// required: true
	DataType string `json:"data_type"`

	// Title
	// required: true
	Title string `json:"title"`

	// Content
	// required: true
	Content string `json:"content"`

	// Optional reminder date, YYYY-MM-DD
	Date *string `json:"date,omitempty"`

	// Optional reminder time, HH:MM
	Time *string `json:"time,omitempty"`

	// Optional voice note, base64
	VoiceNote []byte `json:"voice_note,omitempty"`

	// Optional file attachment, base64
	FileData []byte `json:"file_data,omitempty"`

	// Name of the attached file
	FileName *string `json:"file_name,omitempty"`

	// Insurance detail fields, required for data_type=insurance
	Insurance *InsuranceFields `json:"insurance,omitempty"`

	// Medication detail fields, required for data_type=medication
	Medication *MedicationFields `json:"medication,omitempty"`
}

// AddMemoryResponse represents a successful add response
// swagger:model AddMemoryResponse
type AddMemoryResponse struct {
	// The stored record
	Memory *models.MemoryDB `json:"memory"`
}

// AddMemoryErrorResponse represents an error response for adding a memory
// swagger:model AddMemoryErrorResponse
type AddMemoryErrorResponse struct {
	// Error message
	// default: Duplicate memory detected
	Error string `json:"error"`
}

func (req *AddMemoryRequest) toInput() (services.AddMemoryInput, error) {
	in := services.AddMemoryInput{
		DataType:  req.DataType,
		Title:     req.Title,
		Content:   req.Content,
		Time:      req.Time,
		VoiceNote: req.VoiceNote,
		FileData:  req.FileData,
		FileName:  req.FileName,
	}

	if req.Date != nil {
		d, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return in, err
		}
		in.Date = &d
	}

	if req.Insurance != nil {
		due, err := time.Parse("2006-01-02", req.Insurance.MonthlyDueDate)
		if err != nil {
			return in, err
		}
		maturity, err := time.Parse("2006-01-02", req.Insurance.MaturityDate)
		if err != nil {
			return in, err
		}
		in.Insurance = &models.InsuranceDetails{MonthlyDueDate: due, MaturityDate: maturity}
	}

	if req.Medication != nil {
		in.Medication = &models.MedicationDetails{
			MedName: req.Medication.MedName,
			Dosage:  req.Medication.Dosage,
		}
	}

	return in, nil
}

// NewAddMemoryHandler returns an HTTP handler that stores a new memory
// record and fans copies out to linked family accounts. The route is
// wrapped with the transaction middleware, so the fan-out is atomic.
// @Summary Add a memory record
// @Description Validates and stores a typed record, duplicating it to every account that linked itself to the caller.
// @Tags memories
// @Accept json
// @Produce json
// @Param addMemoryRequest body handlers.AddMemoryRequest true "Memory record"
// @Success 201 {object} handlers.AddMemoryResponse "Record stored"
// @Failure 400 {object} handlers.AddMemoryErrorResponse "Validation failure"
// @Failure 409 {object} handlers.AddMemoryErrorResponse "Duplicate memory"
// @Failure 500 {object} handlers.AddMemoryErrorResponse "Internal server error"
// @Router /memories [post]
// @Security BearerAuth
func NewAddMemoryHandler(svc MemoryAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AddMemoryErrorResponse{Error: "Unauthorized"})
			return
		}

		var req AddMemoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AddMemoryErrorResponse{Error: "invalid request body"})
			return
		}

		in, err := req.toInput()
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AddMemoryErrorResponse{Error: "invalid date, want YYYY-MM-DD"})
			return
		}

		rec, err := svc.Add(r.Context(), userID, in)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidMemory):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(AddMemoryErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrDuplicateMemory):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(AddMemoryErrorResponse{Error: "Duplicate memory detected"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AddMemoryErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(AddMemoryResponse{Memory: rec})
	}
}
