package table_test

import (
	"testing"

	"github.com/adrianliechti/medlens/pkg/table"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		rows []table.Row
	}{
		{
			name: "labeled lines",
			text: "Doctor Name: Dr. Smith\nPatient Name: John Doe\nAmount: 500",
			rows: []table.Row{
				{Key: "Doctor Name", Value: "Dr. Smith"},
				{Key: "Patient Name", Value: "John Doe"},
				{Key: "Amount", Value: "500"},
			},
		},
		{
			name: "unlabeled and blank lines are dropped",
			text: "Notes\n\nAmount: 100",
			rows: []table.Row{
				{Key: "Amount", Value: "100"},
			},
		},
		{
			name: "split at first colon only",
			text: "Time: 10:30",
			rows: []table.Row{
				{Key: "Time", Value: "10:30"},
			},
		},
		{
			name: "whitespace is trimmed",
			text: "   Dose  :   1 tablet twice daily   \r\n",
			rows: []table.Row{
				{Key: "Dose", Value: "1 tablet twice daily"},
			},
		},
		{
			name: "empty key and value",
			text: ":",
			rows: []table.Row{
				{Key: "", Value: ""},
			},
		},
		{
			name: "empty text",
			text: "",
			rows: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.rows, table.Parse(tt.text, nil))
		})
	}
}

func TestParseKeepUnlabeled(t *testing.T) {
	rows := table.Parse("Notes\n\nAmount: 100", &table.Options{KeepUnlabeled: true})

	require.Equal(t, []table.Row{
		{Value: "Notes", Unlabeled: true},
		{Key: "Amount", Value: "100"},
	}, rows)

	require.Equal(t, `<tr><td colspan="2">Notes</td></tr><tr><td>Amount</td><td>100</td></tr>`, table.Render(rows))
}

func TestHTML(t *testing.T) {
	require.Equal(t,
		"<tr><td>Doctor Name</td><td>Dr. Smith</td></tr><tr><td>Patient Name</td><td>John Doe</td></tr><tr><td>Amount</td><td>500</td></tr>",
		table.HTML("Doctor Name: Dr. Smith\nPatient Name: John Doe\nAmount: 500", nil),
	)

	require.Equal(t, "<tr><td>Amount</td><td>100</td></tr>", table.HTML("Notes\nAmount: 100", nil))

	require.Equal(t, "", table.HTML("", nil))
	require.Equal(t, "", table.HTML("no colon anywhere\nreally none", nil))
}

func TestHTMLEscapes(t *testing.T) {
	require.Equal(t,
		"<tr><td>Note</td><td>&lt;script&gt;alert(1)&lt;/script&gt; &amp; more</td></tr>",
		table.HTML("Note: <script>alert(1)</script> & more", nil),
	)
}
