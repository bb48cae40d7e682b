package inventory

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in      string
		want    Quantity
		removes bool
		wantErr bool
	}{
		{in: "3", want: Count(3)},
		{in: " 12 ", want: Count(12)},
		{in: "0", want: Count(0), removes: true},
		{in: "-1", want: Count(-1)},
		{in: "REMOVE", want: Remove(), removes: true},
		{in: "remove", wantErr: true},
		{in: "1.5", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			q, err := ParseQuantity(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidQuantity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, q)
			assert.Equal(t, tt.removes, q.Removes())
		})
	}
}

func TestQuantity_JSON(t *testing.T) {
	var body struct {
		Quantity Quantity `json:"quantity"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"quantity":7}`), &body))
	assert.Equal(t, 7, body.Quantity.Value())

	require.NoError(t, json.Unmarshal([]byte(`{"quantity":"REMOVE"}`), &body))
	assert.True(t, body.Quantity.Removes())
	assert.Equal(t, "REMOVE", body.Quantity.String())

	require.NoError(t, json.Unmarshal([]byte(`{"quantity":"4"}`), &body))
	assert.Equal(t, 4, body.Quantity.Value())

	err := json.Unmarshal([]byte(`{"quantity":true}`), &body)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	out, err := json.Marshal(Remove())
	require.NoError(t, err)
	assert.JSONEq(t, `"REMOVE"`, string(out))
}
