package assemble

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/directory"
)

// Identifier synthesis and envelope defaults.
const (
	DatasetIDBase           = 1000
	VersionIDBase           = 2000
	DefaultProtocol         = "doi"
	DefaultAuthority        = "10.70122"
	DefaultIdentifierPrefix = "FK2/"
	DefaultPublisher        = "Dataverse"
	DefaultDatasetType      = "dataset"
	DefaultVersionState     = "DRAFT"
)

// Literal fallbacks used when neither the row, the caller nor the environment
// supplies a required value.
const (
	FallbackContributor  = "Unknown Author"
	FallbackContactEmail = "noreply@example.com"
	FallbackDescription  = "No description provided."
)

// Defaults are optional values for the three required fields.
type Defaults struct {
	Contributor  string `yaml:"contributor,omitempty"`
	ContactEmail string `yaml:"contactEmail,omitempty"`
	Description  string `yaml:"description,omitempty"`
}

// Options configures an Assembler.
type Options struct {
	// Registry is the field directory; nil means directory.Default().
	Registry *directory.Registry

	// Defaults are caller-supplied backfill values (flags, config file).
	Defaults Defaults

	// EnvDefaults are environment-level backfill values, consulted after Defaults.
	EnvDefaults Defaults

	// Authority is the registrant prefix used when a row has none.
	Authority string

	// IdentifierPrefix starts synthesized persistent identifiers.
	IdentifierPrefix string

	// Now is the single clock reading used for every timestamp of the run.
	Now time.Time

	// RandomHex returns at least 12 random lowercase hex characters.
	RandomHex func() string

	// SanitizeDescriptions runs description text through an HTML sanitizer.
	SanitizeDescriptions bool
}

func (o Options) withDefaults() Options {
	if o.Registry == nil {
		o.Registry = directory.Default()
	}

	if o.Authority == "" {
		o.Authority = DefaultAuthority
	}

	if o.IdentifierPrefix == "" {
		o.IdentifierPrefix = DefaultIdentifierPrefix
	}

	if o.Now.IsZero() {
		o.Now = time.Now()
	}

	if o.RandomHex == nil {
		o.RandomHex = uuidHex
	}

	return o
}

// uuidHex returns the 32 hex digits of a random UUID.
func uuidHex() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
