package advisory

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// replySchema constrains the model's JSON reply before it is trusted.
// Both sentences are required and must be non-empty strings.
const replySchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["summary", "suggestion"],
	"properties": {
		"summary":    {"type": "string", "minLength": 1},
		"suggestion": {"type": "string", "minLength": 1}
	}
}`

var compiledReplySchema = gojsonschema.NewStringLoader(replySchema)

// validateReply checks raw JSON against replySchema.
func validateReply(raw string) error {
	result, err := gojsonschema.Validate(compiledReplySchema, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return fmt.Errorf("advisory reply is not valid JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}
	var msgs []string
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return fmt.Errorf("advisory reply failed schema validation: %s", strings.Join(msgs, "; "))
}
