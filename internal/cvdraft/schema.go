package cvdraft

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// draftSchema is the wire contract the backend expects for CV creation.
// Edits are never validated; the schema runs once, at submission time.
const draftSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["personalInfo", "skills"],
  "properties": {
    "personalInfo": {
      "type": "object",
      "properties": {
        "name": {"type": "string"},
        "email": {"type": "string"},
        "phone": {"type": "string"},
        "title": {"type": "string"},
        "linkedin": {"type": "string"},
        "github": {"type": "string"},
        "website": {"type": "string"}
      }
    },
    "summary": {"type": "string"},
    "skills": {"type": "array", "items": {"type": "string"}},
    "experiences": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "company": {"type": "string"},
          "position": {"type": "string"},
          "startDate": {"type": "string"},
          "endDate": {"type": "string"},
          "description": {"type": "string"}
        }
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "institution": {"type": "string"},
          "degree": {"type": "string"},
          "fieldOfStudy": {"type": "string"},
          "startDate": {"type": "string"},
          "endDate": {"type": "string"}
        }
      }
    },
    "projects": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "description": {"type": "string"},
          "technologies": {"type": "array", "items": {"type": "string"}},
          "url": {"type": "string"},
          "startDate": {"type": "string"},
          "endDate": {"type": "string"}
        }
      }
    },
    "certifications": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "issuer": {"type": "string"},
          "date": {"type": "string"},
          "expiryDate": {"type": "string"},
          "credentialId": {"type": "string"},
          "credentialUrl": {"type": "string"}
        }
      }
    },
    "languages": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "proficiency": {"type": "string"}
        }
      }
    },
    "hobbies": {"type": "array", "items": {"type": "string"}},
    "volunteering": {"type": "array", "items": {"type": "string"}},
    "awards": {"type": "array", "items": {"type": "string"}}
  }
}`

// Validate checks the draft against the wire schema and returns a readable
// list of violations.
func (d *Draft) Validate() error {
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(draftSchema),
		gojsonschema.NewBytesLoader(payload),
	)
	if err != nil {
		return fmt.Errorf("running draft schema: %w", err)
	}

	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}

	return fmt.Errorf("draft is not valid: %s", strings.Join(problems, "; "))
}
