package adapter

import (
	"strings"
)

const systemPrompt = "You are a helpful assistant."

const taskPrompt = `You are a medical data summarizer. You will receive JSON data extracted from OCR scans of medical bills and prescriptions. Your task is to summarize this data without losing any information. Follow these instructions precisely:

1. List every value found in the JSON data without using markdown.
2. If a key is not recognized or not available, print the value directly; otherwise match with a key such as Doctor Name: xyz, Patient Name: abc and so on.
3. Ensure that every piece of information from the JSON data is included in the summary.
4. Preserve the order of the data as it appears in the JSON.
5. Handle the data confidentially and ensure that no information is omitted.

Here is the JSON data:

`

func buildPrompt(data string) string {
	var sb strings.Builder

	sb.WriteString(taskPrompt)
	sb.WriteString(data)

	return sb.String()
}
