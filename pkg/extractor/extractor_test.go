package extractor_test

import (
	"testing"

	"github.com/adrianliechti/medlens/pkg/extractor"

	"github.com/stretchr/testify/require"
)

func TestDocumentJSON(t *testing.T) {
	doc := &extractor.Document{
		Pages: []extractor.Page{
			{
				Page: 1,
				Lines: []extractor.Line{
					{Text: "Dr. Smith"},
					{Text: "Amount: 500 <INR>"},
				},
			},
			{
				Page: 2,
			},
		},
	}

	data, err := doc.JSON()
	require.NoError(t, err)

	expected := `{
  "pages": [
    {
      "page_number": 1,
      "lines": [
        {
          "text": "Dr. Smith"
        },
        {
          "text": "Amount: 500 <INR>"
        }
      ]
    },
    {
      "page_number": 2,
      "lines": []
    }
  ]
}`

	require.Equal(t, expected, data)
}

func TestDocumentJSONEmpty(t *testing.T) {
	var doc *extractor.Document

	data, err := doc.JSON()
	require.NoError(t, err)
	require.Equal(t, "{\n  \"pages\": []\n}", data)
}

func TestParsePreservesOrder(t *testing.T) {
	doc := &extractor.Document{}

	for p := 3; p >= 1; p-- {
		page := extractor.Page{Page: p}

		for _, text := range []string{"c", "a", "b"} {
			page.Lines = append(page.Lines, extractor.Line{Text: text})
		}

		doc.Pages = append(doc.Pages, page)
	}

	data, err := doc.JSON()
	require.NoError(t, err)

	result, err := extractor.Parse([]byte(data))
	require.NoError(t, err)

	require.Equal(t, doc, result)
}
