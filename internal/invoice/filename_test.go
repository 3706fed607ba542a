package invoice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lengolf/internal/invoice"
)

func TestArtifactName(t *testing.T) {
	cases := []struct {
		name     string
		supplier string
		number   string
		want     string
	}{
		{"punctuation and spaces", "Acme & Co.", "2024/05", "LENGOLF_Acme___Co_Inv_2024_05.pdf"},
		{"already clean", "Supplier", "202405", "LENGOLF_Supplier_Inv_202405.pdf"},
		{"thai name collapses to empty segment", "บริษัท จำกัด", "1", "LENGOLF__Inv_1.pdf"},
		{"path traversal neutralized", "../etc", "../../x", "LENGOLF_etc_Inv_x.pdf"},
		{"wrapping underscores trimmed", " Padded ", "_7_", "LENGOLF_Padded_Inv_7.pdf"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, invoice.ArtifactName(tc.supplier, tc.number))
		})
	}
}

func TestArtifactName_Deterministic(t *testing.T) {
	a := invoice.ArtifactName("Acme & Co.", "2024/05")
	b := invoice.ArtifactName("Acme & Co.", "2024/05")
	assert.Equal(t, a, b)
}
