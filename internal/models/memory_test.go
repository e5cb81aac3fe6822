package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseMemoryType(t *testing.T) {
	for _, mt := range MemoryTypes {
		got, err := ParseMemoryType(string(mt))
		assert.NoError(t, err)
		assert.Equal(t, mt, got)
	}

	_, err := ParseMemoryType("grocery")
	assert.Error(t, err)

	_, err = ParseMemoryType("")
	assert.Error(t, err)
}

func TestBuildContent_PlainTypes(t *testing.T) {
	for _, mt := range []MemoryType{TypeJournal, TypeDocument, TypeAsset, TypeAddress, TypeKeyDate, TypeOtherNote} {
		content, err := BuildContent(mt, "some text", nil)
		assert.NoError(t, err)
		assert.Equal(t, "some text", content)
	}
}

func TestBuildContent_PlainTypeRejectsDetails(t *testing.T) {
	_, err := BuildContent(TypeJournal, "text", MedicationDetails{MedName: "aspirin", Dosage: "100mg"})
	assert.Error(t, err)
}

func TestBuildContent_Medication(t *testing.T) {
	content, err := BuildContent(TypeMedication, "take with food", MedicationDetails{
		MedName: "Metformin",
		Dosage:  "500mg",
	})
	assert.NoError(t, err)
	assert.Equal(t, "take with food\nMedication: Metformin, Dosage: 500mg", content)
}

func TestBuildContent_MedicationMissingFields(t *testing.T) {
	_, err := BuildContent(TypeMedication, "x", MedicationDetails{Dosage: "500mg"})
	assert.Error(t, err)

	_, err = BuildContent(TypeMedication, "x", MedicationDetails{MedName: "Metformin"})
	assert.Error(t, err)

	_, err = BuildContent(TypeMedication, "x", nil)
	assert.Error(t, err)
}

func TestBuildContent_Insurance(t *testing.T) {
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	maturity := time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC)

	content, err := BuildContent(TypeInsurance, "policy #42", InsuranceDetails{
		MonthlyDueDate: due,
		MaturityDate:   maturity,
	})
	assert.NoError(t, err)
	assert.Equal(t, "policy #42\nMonthly Due: 2026-09-01, Maturity: 2030-01-15", content)
}

func TestBuildContent_InsuranceMissingFields(t *testing.T) {
	_, err := BuildContent(TypeInsurance, "x", InsuranceDetails{MaturityDate: time.Now()})
	assert.Error(t, err)

	_, err = BuildContent(TypeInsurance, "x", nil)
	assert.Error(t, err)
}

func TestBuildContent_MismatchedVariant(t *testing.T) {
	_, err := BuildContent(TypeInsurance, "x", MedicationDetails{MedName: "a", Dosage: "b"})
	assert.Error(t, err)
}

func TestValidateClock(t *testing.T) {
	assert.NoError(t, ValidateClock("09:00"))
	assert.NoError(t, ValidateClock("23:59"))
	assert.Error(t, ValidateClock("24:00"))
	assert.Error(t, ValidateClock("9am"))
	assert.Error(t, ValidateClock(""))
}

func TestDateString(t *testing.T) {
	var m MemoryDB
	assert.Equal(t, "", m.DateString())

	d := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	m.Date = &d
	assert.Equal(t, "2026-08-30", m.DateString())
}
