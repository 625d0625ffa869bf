package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Title    string `json:"title" validate:"required"`
	Capacity int    `json:"capacity" validate:"required,min=1"`
	SortBy   string `json:"sortBy" validate:"omitempty,oneof=date capacity"`
}

func TestValidate_Valid(t *testing.T) {
	fields := Validate(sampleRequest{Title: "Go meetup", Capacity: 10})
	assert.Nil(t, fields)
}

func TestValidate_RequiredFields(t *testing.T) {
	fields := Validate(sampleRequest{})
	assert.NotNil(t, fields)
	assert.Equal(t, "Title is required", fields["title"])
	assert.Equal(t, "Capacity is required", fields["capacity"])
}

func TestValidate_Min(t *testing.T) {
	fields := Validate(sampleRequest{Title: "Go meetup", Capacity: -5})
	assert.NotNil(t, fields)
	assert.Equal(t, "Capacity must be at least 1", fields["capacity"])
}

func TestValidate_OneOf(t *testing.T) {
	fields := Validate(sampleRequest{Title: "Go meetup", Capacity: 1, SortBy: "title"})
	assert.NotNil(t, fields)
	assert.Equal(t, "Sortby must be one of: date capacity", fields["sortBy"])
}

func TestValidate_JSONFieldNames(t *testing.T) {
	fields := Validate(sampleRequest{Capacity: 1})
	assert.NotNil(t, fields)
	_, usesJSONName := fields["title"]
	assert.True(t, usesJSONName, "violations should be keyed by json tag")
}
