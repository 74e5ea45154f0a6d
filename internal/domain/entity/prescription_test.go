package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRxValuesEmpty(t *testing.T) {
	assert.True(t, RxValues{}.Empty())
	assert.True(t, RxValues{Sph: "  "}.Empty())
	assert.False(t, RxValues{Sph: "Plano"}.Empty())
	assert.False(t, RxValues{Axis: "90L"}.Empty())
}

func TestPrescriptionHasValues(t *testing.T) {
	var nilRx *PrescriptionData
	assert.False(t, nilRx.HasValues())

	assert.False(t, (&PrescriptionData{LensType: "Bifocal"}).HasValues())

	rx := &PrescriptionData{Left: EyePrescription{Near: RxValues{Cyl: "-0.75"}}}
	assert.True(t, rx.HasValues())
}

func TestParsePrescription(t *testing.T) {
	object := `{"right":{"distance":{"sph":"-1.25","cyl":"-0.50","axis":"90"}},"lensType":"Single Vision"}`

	t.Run("object", func(t *testing.T) {
		rx, err := ParsePrescription(json.RawMessage(object))
		require.NoError(t, err)
		require.NotNil(t, rx)
		assert.Equal(t, "-1.25", rx.Right.Distance.Sph)
		assert.Equal(t, "Single Vision", rx.LensType)
	})

	t.Run("encoded string", func(t *testing.T) {
		encoded, err := json.Marshal(object)
		require.NoError(t, err)
		rx, err := ParsePrescription(encoded)
		require.NoError(t, err)
		require.NotNil(t, rx)
		assert.Equal(t, "90", rx.Right.Distance.Axis)
	})

	t.Run("null and empty", func(t *testing.T) {
		for _, raw := range []string{"", "null", `""`, `"  "`} {
			rx, err := ParsePrescription(json.RawMessage(raw))
			require.NoError(t, err, "raw=%q", raw)
			assert.Nil(t, rx)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParsePrescription(json.RawMessage(`{"right":`))
		assert.Error(t, err)

		_, err = ParsePrescription(json.RawMessage(`"{broken"`))
		assert.Error(t, err)
	})
}

func TestInvoiceItemUnmarshalDropsMalformedPrescription(t *testing.T) {
	payload := `{"item_name":"Lens","quantity":1,"unit_price":500,"subtotal":500,"prescription_data":"{broken"}`

	var item InvoiceItem
	require.NoError(t, json.Unmarshal([]byte(payload), &item))
	assert.Equal(t, "Lens", item.ItemName)
	assert.Nil(t, item.Prescription)
}

func TestInvoiceItemUnmarshalKeepsPrescription(t *testing.T) {
	payload := `{"item_name":"Lens","quantity":1,"unit_price":500,"subtotal":500,
		"prescription_data":{"left":{"distance":{"sph":"-2.00"}}}}`

	var item InvoiceItem
	require.NoError(t, json.Unmarshal([]byte(payload), &item))
	require.NotNil(t, item.Prescription)
	assert.Equal(t, "-2.00", item.Prescription.Left.Distance.Sph)
}
