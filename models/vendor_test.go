package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendor_String(t *testing.T) {
	assert.Equal(t, "unknown", VendorUnknown.String())
	assert.Equal(t, "nvidia", VendorNvidia.String())
	assert.Equal(t, "amd", VendorAMD.String())
	assert.Equal(t, "unknown", Vendor(42).String())
}

func TestParseVendor(t *testing.T) {
	tests := []struct {
		in     string
		want   Vendor
		wantOK bool
	}{
		{in: "nvidia", want: VendorNvidia, wantOK: true},
		{in: " NVIDIA ", want: VendorNvidia, wantOK: true},
		{in: "Amd", want: VendorAMD, wantOK: true},
		{in: "unknown", want: VendorUnknown, wantOK: true},
		{in: "", want: VendorUnknown, wantOK: true},
		{in: "intel", want: VendorUnknown, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseVendor(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestVendor_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(map[string]Vendor{"vendor": VendorAMD})
	require.NoError(t, err)
	assert.JSONEq(t, `{"vendor":"amd"}`, string(out))
}

func TestVendor_UnmarshalJSON(t *testing.T) {
	var got struct {
		Vendor Vendor `json:"vendor"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"vendor":"NVIDIA"}`), &got))
	assert.Equal(t, VendorNvidia, got.Vendor)

	assert.Error(t, json.Unmarshal([]byte(`{"vendor":"intel"}`), &got))
}
