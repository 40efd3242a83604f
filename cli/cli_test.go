package cli

import (
	"testing"

	"github.com/amp-labs/bitonic/bitonic"
	"github.com/stretchr/testify/assert"
)

func TestIndexOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, indexOf(orderChoices, bitonic.Descending))
	assert.Equal(t, 0, indexOf(orderChoices, bitonic.Ascending))
	assert.Equal(t, 2, indexOf(comparisonChoices, Natural))
	assert.Equal(t, 0, indexOf(comparisonChoices, Comparison("unknown")))
}

func TestValidateLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "en"},
		{input: "sv-SE"},
		{input: "ja"},
		{input: "", wantErr: true},
		{input: "not a tag!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			err := ValidateLanguage(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
