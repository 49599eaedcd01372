package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRole_HR(t *testing.T) {
	tests := []struct {
		name string
		role string
	}{
		{"plain", "HR Manager"},
		{"senior", "Senior HR Manager"},
		{"lowercase", "hr business partner"},
		{"embedded", "Head of HR Operations"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, CategoryHR, ClassifyRole(tt.role))
		})
	}
}

func TestClassifyRole_Data(t *testing.T) {
	tests := []struct {
		name string
		role string
	}{
		{"data_scientist", "Data Scientist II"},
		{"data_engineer", "data engineer"},
		{"scientist_only", "Research Scientist"},
		{"analyst", "Data Analyst"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, CategoryData, ClassifyRole(tt.role))
		})
	}
}

func TestClassifyRole_Generic(t *testing.T) {
	assert.Equal(t, CategoryGeneric, ClassifyRole("Software Engineer"))
	assert.Equal(t, CategoryGeneric, ClassifyRole(""))
	assert.Equal(t, CategoryGeneric, ClassifyRole("Product Manager"))
}

func TestClassifyRole_HRWinsOverData(t *testing.T) {
	// Rule order: HR is checked before DATA, so a title containing both
	// classifies as HR.
	assert.Equal(t, CategoryHR, ClassifyRole("HR Data Specialist"))
}

func TestClassifyRole_Idempotent(t *testing.T) {
	for _, role := range []string{"HR Manager", "Data Scientist", "Software Engineer"} {
		first := ClassifyRole(role)
		second := ClassifyRole(role)
		assert.Equal(t, first, second)
	}
}

func TestCoreSkills_GenericIsEmpty(t *testing.T) {
	assert.Empty(t, CoreSkills(CategoryGeneric))
	assert.NotEmpty(t, CoreSkills(CategoryHR))
	assert.NotEmpty(t, CoreSkills(CategoryData))
}
