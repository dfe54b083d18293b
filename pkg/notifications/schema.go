package notifications

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed message-schema.json
var messageSchema string

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

// validateMessage checks a rendered message against the Slack attachment message schema
func validateMessage(message string) error {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(messageSchema))
	})
	if schemaErr != nil {
		return fmt.Errorf("cannot load message schema %s", schemaErr)
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(message))
	if err != nil {
		return fmt.Errorf("rendered message is not json: %s", err)
	}

	if !result.Valid() {
		errs := strings.Builder{}
		for _, desc := range result.Errors() {
			errs.WriteString(fmt.Sprintf("- %s\n", desc))
		}
		return fmt.Errorf("schema validation failed: \n%s", errs.String())
	}

	return nil
}
