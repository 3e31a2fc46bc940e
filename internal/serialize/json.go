package serialize

import (
	"encoding/json"

	"github.com/zendesk/snowcrash/internal/blueprint"
)

// JSON renders bp as indented JSON using the fixed key vocabulary.
func JSON(bp blueprint.Blueprint) ([]byte, error) {
	return json.MarshalIndent(toBlueprintDTO(bp), "", "  ")
}
