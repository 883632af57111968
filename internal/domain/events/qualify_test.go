package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDrug(t *testing.T) {
	assert.Equal(t, "vancomycin", NormalizeDrug("Vancomycin HCl"))
	assert.Equal(t, "vancomycin", NormalizeDrug("Vancomycin Enema"))
	assert.Equal(t, "piperacillin-tazobactam", NormalizeDrug("Piperacillin-Tazobactam Na"))
	assert.Equal(t, "sulfamethoxazole-trimethoprim", NormalizeDrug("Sulfameth/Trimethoprim"))
	assert.Equal(t, "meropenem", NormalizeDrug("  Meropenem "))
}

func TestQualifyOrders_IVRoute(t *testing.T) {
	orders := []AbxOrder{
		{Drug: "Meropenem", Route: "IV"},
		{Drug: "Vancomycin HCl", Route: "IV DRIP"},
		{Drug: "CefazoLIN", Route: "IV"},
		{Drug: "Ampicillin-Sulbactam", Route: "IV"},
		{Drug: "Erythromycin Lactobionate", Route: "IV"},
	}

	got := QualifyOrders(orders)
	require.Len(t, got, 2)
	assert.Equal(t, "meropenem", got[0].Drug)
	assert.Equal(t, "vancomycin", got[1].Drug)
}

func TestQualifyOrders_OralRoutes(t *testing.T) {
	orders := []AbxOrder{
		{Drug: "Vancomycin Oral Liquid", Route: "PO"},
		{Drug: "Linezolid", Route: "PO/NG"},
		{Drug: "Linezolid", Route: "PO OR ENTERAL TUBE"},
		{Drug: "Vancomycin", Route: "PO/OG"},
		{Drug: "Metronidazole", Route: "PO"},
		{Drug: "Vancomycin", Route: "PR"},
	}

	got := QualifyOrders(orders)
	require.Len(t, got, 4)
	for _, o := range got {
		assert.Contains(t, []string{"vancomycin", "linezolid"}, o.Drug)
	}
}

func TestQualifyOrders_Exclusions(t *testing.T) {
	orders := []AbxOrder{
		{Drug: "Vancomycin Desensitization", Route: "IV"},
		{Drug: "NF Linezolid", Route: "IV"},
		{Drug: "Gentamicin Sulfate", Route: "IV"},
	}

	got := QualifyOrders(orders)
	require.Len(t, got, 1)
	assert.Equal(t, "gentamicin", got[0].Drug)
}

func TestQualifyOrders_PreservesOrder(t *testing.T) {
	orders := []AbxOrder{
		{Drug: "Meropenem", Route: "IV"},
		{Drug: "Gentamicin", Route: "IV"},
		{Drug: "Meropenem", Route: "IV"},
	}

	got := QualifyOrders(orders)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"meropenem", "gentamicin", "meropenem"},
		[]string{got[0].Drug, got[1].Drug, got[2].Drug})
}
