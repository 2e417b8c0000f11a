package mappers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/domain/project"
)

func reconstructedProject(gallery []uint) *project.Project {
	mainImage := uint(7)
	return project.ReconstructProject(project.ReconstructParams{
		ID:              4,
		OrganizationID:  2,
		Name:            "Solar farm",
		Description:     "# Solar",
		DescriptionHTML: "<h1>Solar</h1>",
		LocationText:    "Lisbon",
		Currency:        "EUR",
		MinPerUser:      100,
		MaxPerUser:      10000,
		InvestmentCap:   500000,
		StartDate:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		Active:          true,
		MainImage:       &mainImage,
		Gallery:         gallery,
		CreatedByUUID:   "user-1",
		CreatedAt:       time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	})
}

func TestProjectMapper_GalleryRoundTrip(t *testing.T) {
	mapper := NewProjectMapper()

	model, err := mapper.ToModel(reconstructedProject([]uint{7, 8, 9}))
	require.NoError(t, err)
	require.NotNil(t, model)

	// The gallery column is stored as a JSON array of document IDs.
	encoded, err := json.Marshal(model.Gallery)
	require.NoError(t, err)
	assert.JSONEq(t, "[7,8,9]", string(encoded))

	entity, err := mapper.ToEntity(model)
	require.NoError(t, err)
	require.NotNil(t, entity)
	assert.Equal(t, []uint{7, 8, 9}, entity.Gallery())
	assert.Equal(t, "Solar farm", entity.Name())
	require.NotNil(t, entity.MainImage())
	assert.Equal(t, uint(7), *entity.MainImage())
}

func TestProjectMapper_EmptyGallery(t *testing.T) {
	mapper := NewProjectMapper()

	model, err := mapper.ToModel(reconstructedProject(nil))
	require.NoError(t, err)
	require.NotNil(t, model)

	entity, err := mapper.ToEntity(model)
	require.NoError(t, err)
	require.NotNil(t, entity)
	assert.Empty(t, entity.Gallery())
}
