package inventory

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/pantry-tracker/internal/models"
	"github.com/rogerio-castellano/pantry-tracker/internal/store"
)

func TestImport(t *testing.T) {
	tests := []struct {
		name         string
		seed         []models.Item
		csv          string
		mode         string
		wantImported int
		wantErrors   []RowError
		want         []models.Item
	}{
		{
			name:         "valid rows",
			csv:          "name,quantity\nflour,2\nsugar,1\n",
			wantImported: 2,
			wantErrors:   []RowError{},
			want:         []models.Item{{Name: "flour", Quantity: 2}, {Name: "sugar", Quantity: 1}},
		},
		{
			name:         "columns in any order with padding",
			csv:          "Quantity, Name\n3, rice\n",
			wantImported: 1,
			wantErrors:   []RowError{},
			want:         []models.Item{{Name: "rice", Quantity: 3}},
		},
		{
			name:         "row errors are collected",
			csv:          "name,quantity\n,1\nsalt,-2\npepper,x\noil,1\n",
			wantImported: 1,
			wantErrors: []RowError{
				{Row: 2, Message: "missing name"},
				{Row: 3, Message: "invalid quantity"},
				{Row: 4, Message: "invalid quantity"},
			},
			want: []models.Item{{Name: "oil", Quantity: 1}},
		},
		{
			name:         "skip mode leaves existing items",
			seed:         []models.Item{{Name: "flour", Quantity: 9}},
			csv:          "name,quantity\nflour,2\n",
			mode:         ImportSkip,
			wantImported: 0,
			wantErrors:   []RowError{{Row: 2, Message: "item 'flour' already exists"}},
			want:         []models.Item{{Name: "flour", Quantity: 9}},
		},
		{
			name:         "unknown mode behaves like skip",
			seed:         []models.Item{{Name: "flour", Quantity: 9}},
			csv:          "name,quantity\nflour,2\n",
			mode:         "merge",
			wantImported: 0,
			wantErrors:   []RowError{{Row: 2, Message: "item 'flour' already exists"}},
			want:         []models.Item{{Name: "flour", Quantity: 9}},
		},
		{
			name:         "update mode overwrites and zero deletes",
			seed:         []models.Item{{Name: "flour", Quantity: 9}, {Name: "salt", Quantity: 1}},
			csv:          "name,quantity\nflour,2\nsalt,0\n",
			mode:         ImportUpdate,
			wantImported: 2,
			wantErrors:   []RowError{},
			want:         []models.Item{{Name: "flour", Quantity: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSynchronizer(t, tt.seed...)

			result, err := s.Import(context.Background(), strings.NewReader(tt.csv), tt.mode)

			require.NoError(t, err)
			assert.Equal(t, tt.wantImported, result.Imported)
			assert.Equal(t, tt.wantErrors, result.Errors)
			assert.Equal(t, tt.want, s.Inventory())
		})
	}
}

func TestImport_InvalidFile(t *testing.T) {
	s, _ := newTestSynchronizer(t)

	for _, content := range []string{"", "name,price\nflour,2\n", "name,quantity\nflour\n"} {
		_, err := s.Import(context.Background(), strings.NewReader(content), "")
		assert.ErrorIs(t, err, ErrInvalidCSV, "content %q", content)
	}
}

func TestImport_StoreErrorAborts(t *testing.T) {
	boom := errors.New("unreachable")
	ds := &failingStore{DocumentStore: store.NewMemoryStore(), failOn: map[string]bool{"put": true}, err: boom}
	s := NewSynchronizer(ds, "", nil)

	result, err := s.Import(context.Background(), strings.NewReader("name,quantity\nflour,2\nrice,1\n"), ImportUpdate)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, result.Imported)
}

func TestRowError(t *testing.T) {
	assert.Equal(t, "row 7: missing name", RowError{Row: 7, Message: "missing name"}.Error())
}
