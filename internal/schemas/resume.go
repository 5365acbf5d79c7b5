package schemas

import _ "embed"

// parsedResumeSchema is the JSON Schema for the structured resume record
// accepted at the parsing boundary.
//
//go:embed parsed_resume.schema.json
var parsedResumeSchema string

// ValidateParsedResumeJSON checks a raw parsed-resume document against the
// embedded schema before it is decoded into types.ParsedResume.
func ValidateParsedResumeJSON(doc []byte) error {
	return ValidateJSONString(parsedResumeSchema, string(doc))
}
