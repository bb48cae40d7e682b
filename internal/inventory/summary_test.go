package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rogerio-castellano/pantry-tracker/internal/models"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]models.Item{
		{Name: "beans", Quantity: 3},
		{Name: "rice", Quantity: 5},
		{Name: "salt", Quantity: 5},
	})

	assert.Equal(t, 3, s.TotalItems)
	assert.Equal(t, 13, s.TotalUnits)
	assert.Equal(t, LargestItem{Name: "rice", Quantity: 5}, s.LargestItem)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}
