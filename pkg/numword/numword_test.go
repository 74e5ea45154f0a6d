package numword

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToWords(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "zero"},
		{7, "seven"},
		{13, "thirteen"},
		{40, "forty"},
		{67, "sixty seven"},
		{100, "one hundred"},
		{105, "one hundred and five"},
		{999, "nine hundred and ninety nine"},
		{1000, "one thousand"},
		{1500, "one thousand five hundred"},
		{100000, "one lakh"},
		{250000, "two lakh fifty thousand"},
		{1234567, "twelve lakh thirty four thousand five hundred and sixty seven"},
		{10000000, "one crore"},
		{12345678, "one crore twenty three lakh forty five thousand six hundred and seventy eight"},
		{999999999, "ninety nine crore ninety nine lakh ninety nine thousand nine hundred and ninety nine"},
	}

	for _, tt := range tests {
		got, err := ToWords(tt.n)
		require.NoError(t, err, "n=%d", tt.n)
		assert.Equal(t, tt.want, got, "n=%d", tt.n)
	}
}

func TestToWordsRange(t *testing.T) {
	_, err := ToWords(-1)
	assert.Error(t, err)

	_, err = ToWords(1000000000)
	assert.Error(t, err)
}
