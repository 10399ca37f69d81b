package seo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"veteranmentors.org/mentors-web/internal/content"
)

func TestForSite(t *testing.T) {
	lib, err := content.Embedded("veteran-mentors")
	require.NoError(t, err)
	m := ForSite(lib.Default(), "")
	require.Equal(t, "https://veteranmentors.org/", m.Canonical)
	require.Equal(t, "website", m.OG.Type)
	require.Equal(t, "Veteran Mentors", m.OG.SiteName)
	require.Equal(t, "en", m.Lang)

	m = ForSite(lib.Default(), "https://example.com/x")
	require.Equal(t, "https://example.com/x", m.OG.URL)
}

func TestGraphIncludesMentorsAndServices(t *testing.T) {
	lib, err := content.Embedded("veteran-mentors")
	require.NoError(t, err)
	site := lib.Default()

	var doc struct {
		Context string           `json:"@context"`
		Graph   []map[string]any `json:"@graph"`
	}
	require.NoError(t, json.Unmarshal([]byte(JSON(Graph(site))), &doc))
	require.Equal(t, "https://schema.org", doc.Context)
	require.Len(t, doc.Graph, 2+len(site.Mentors.Items)+len(site.Offerings.Items))

	var offer map[string]any
	for _, n := range doc.Graph {
		if n["@type"] == "Service" && n["offers"] != nil {
			offer = n["offers"].(map[string]any)
		}
	}
	require.NotNil(t, offer)
	require.EqualValues(t, 1200, offer["price"])
	require.Equal(t, "INR", offer["priceCurrency"])
}

func TestMajorUnits(t *testing.T) {
	require.Equal(t, "1200", majorUnits(120000))
	require.Equal(t, "12.50", majorUnits(1250))
}

func TestJSONFallsBackOnError(t *testing.T) {
	require.Equal(t, "{}", string(JSON(map[string]any{"bad": make(chan int)})))
}
