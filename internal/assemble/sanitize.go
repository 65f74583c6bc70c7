package assemble

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/directory"
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/document"
)

var (
	descriptionPolicy     *bluemonday.Policy
	descriptionPolicyOnce sync.Once
)

func policy() *bluemonday.Policy {
	descriptionPolicyOnce.Do(func() {
		descriptionPolicy = bluemonday.UGCPolicy()
	})

	return descriptionPolicy
}

// SanitizeHTML strips markup that is unsafe to render from description text.
// Formatting tags such as <p> and <a href> are kept. The result is HTML:
// text is entity-escaped, so "Data & code" becomes "Data &amp; code".
func SanitizeHTML(s string) string {
	return policy().Sanitize(s)
}

// sanitizeDescriptions rewrites every description value in place.
func sanitizeDescriptions(block *document.MetadataBlock, sanitize func(string) string) {
	for i := range block.Fields {
		f := &block.Fields[i]
		if f.TypeName != directory.FieldDescription {
			continue
		}

		entries, ok := f.Entries()
		if !ok {
			continue
		}

		for _, e := range entries {
			if v := e.Value(directory.SubfieldDescriptionValue); v != "" {
				e.Set(directory.SubfieldDescriptionValue, sanitize(v))
			}
		}
	}
}
