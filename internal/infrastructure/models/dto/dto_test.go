package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestProjectPatch_FieldSet_SkipsOmittedAndEmpty(t *testing.T) {
	devId := int64(4)
	p := &ProjectPatch{
		Name:        strPtr("api"),
		Description: strPtr(""),
		EndDate:     strPtr("2024-05-01"),
		DeveloperId: &devId,
	}

	fs := p.FieldSet()

	assert.Equal(t, []string{"name", "endDate", "developerId"}, fs.Columns())
	assert.Equal(t, []any{"api", "2024-05-01", int64(4)}, fs.Values())
}

func TestProjectPatch_FieldSet_ZeroDeveloperIdIsEmpty(t *testing.T) {
	zero := int64(0)
	p := &ProjectPatch{DeveloperId: &zero}

	assert.Empty(t, p.FieldSet())
}

func TestDeveloperPatch_FieldSet(t *testing.T) {
	assert.Empty(t, (&DeveloperPatch{}).FieldSet())
	assert.Equal(t, []string{"email"}, (&DeveloperPatch{Email: strPtr("a@b.co")}).FieldSet().Columns())
}

func TestCreateProjectDTO_FieldSet_OptionalEndDate(t *testing.T) {
	d := &CreateProjectDTO{
		Name:          "api",
		Description:   "rest api",
		EstimatedTime: "2 weeks",
		Repository:    "https://github.com/x/api",
		StartDate:     "2024-01-01",
		DeveloperId:   1,
	}

	assert.Equal(t,
		[]string{"name", "description", "estimatedTime", "repository", "startDate", "developerId"},
		d.FieldSet().Columns(),
	)

	d.EndDate = strPtr("2024-02-01")
	assert.Contains(t, d.FieldSet().Columns(), "endDate")
}
