// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ai

import (
	"bytes"
	"text/template"
)

// extractionPromptTmpl asks the model for strict-JSON bibliographic fields.
// Models ignore the "JSON only" instruction often enough that responses go
// through ParseMetadata rather than a plain json.Unmarshal.
var extractionPromptTmpl = template.Must(template.New("extraction").Parse(`You are a bibliographic metadata extraction system. Read the following text of a web page and identify the fields needed to cite it.

Respond with a single JSON object containing these string fields, using "" for anything the text does not establish:
- "title": the title of the work
- "author": the personal author name(s), multiple names joined by "; ", never the publishing organization
- "year": the publication date or year as written
- "publisher": the publishing organization, if named
- "site": the name of the website the work appears on
- "accessed": "" (the caller records the access date)

Do not include any text outside the JSON object. Do not guess values that are not supported by the text.

Page URL: {{.URL}}

Page text:
{{.Text}}
`))

// ExtractionPrompt renders the metadata-extraction prompt for one chunk of
// readable page text.
func ExtractionPrompt(pageURL, text string) (string, error) {
	var buf bytes.Buffer
	err := extractionPromptTmpl.Execute(&buf, struct{ URL, Text string }{URL: pageURL, Text: text})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
