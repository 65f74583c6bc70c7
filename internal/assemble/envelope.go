package assemble

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/column"
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/diagnostic"
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/document"
)

// maxExactInt is the largest float64 magnitude up to which every whole number
// converts to int exactly.
const maxExactInt = 1 << 53

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05Z"
)

// License defaults (CC0 1.0).
var defaultLicense = document.License{
	Name:                   "CC0 1.0",
	URI:                    "http://creativecommons.org/publicdomain/zero/1.0",
	IconURI:                "https://licensebuttons.net/p/zero/1.0/88x31.png",
	RightsIdentifier:       "CC0-1.0",
	RightsIdentifierScheme: "SPDX",
	SchemeURI:              "https://spdx.org/licenses/",
	LanguageCode:           "en",
}

// envelope reads row cells with defaults and reports malformed values.
type envelope struct {
	row   column.Row
	diags *diagnostic.Diagnostics
}

func (e envelope) strOr(col, def string) string {
	return e.row.GetOr(col, def)
}

func (e envelope) intOr(col string, def int) int {
	raw, ok := e.row.Get(col)
	if !ok {
		return def
	}

	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}

	// Spreadsheet exports often write whole numbers as "12.0".
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f == math.Trunc(f) && math.Abs(f) <= maxExactInt {
		return int(f)
	}

	e.diags.AddWarning(diagnostic.CodeIntegerInvalid,
		fmt.Sprintf("%q is not an integer, using %d", raw, def), e.row.Number(), col)

	return def
}

func (e envelope) boolOr(col string, def bool) bool {
	raw, ok := e.row.Get(col)
	if !ok {
		return def
	}

	switch strings.ToLower(raw) {
	case "yes", "y", "on":
		return true
	case "no", "n", "off":
		return false
	}

	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}

	e.diags.AddWarning(diagnostic.CodeBoolInvalid,
		fmt.Sprintf("%q is not a boolean, using %t", raw, def), e.row.Number(), col)

	return def
}

// buildEnvelope creates the dataset with its system fields and an empty
// citation block.
func (a *Assembler) buildEnvelope(row column.Row, diags *diagnostic.Diagnostics) *document.Dataset {
	e := envelope{row: row, diags: diags}
	idx := row.Index()

	date := a.opts.Now.UTC().Format(dateLayout)
	dateTime := a.opts.Now.UTC().Format(dateTimeLayout)

	datasetID := e.intOr("id", DatasetIDBase+idx)
	versionID := e.intOr("versionId", VersionIDBase+idx)

	identifier, ok := row.Get("identifier")
	if !ok {
		identifier = a.opts.IdentifierPrefix + strings.ToUpper(a.randomHex(8))
	}

	protocol := e.strOr("protocol", DefaultProtocol)
	authority := e.strOr("authority", a.opts.Authority)
	datasetType := e.strOr("datasetType", DefaultDatasetType)
	publicationDate := e.strOr("publicationDate", date)

	persistentURL := fmt.Sprintf("hdl:%s/%s", authority, identifier)
	if protocol == DefaultProtocol {
		persistentURL = fmt.Sprintf("https://doi.org/%s/%s", authority, identifier)
	}

	storage, hasStorage := row.Get("storageIdentifier")

	datasetStorage := storage
	versionStorage := storage

	if !hasStorage {
		datasetStorage = fmt.Sprintf("s3://%s/%s", authority, identifier)
		versionStorage = fmt.Sprintf("s3://%s:%s-%s", authority, a.randomHex(12), a.randomHex(12))
	}

	return &document.Dataset{
		ID:                datasetID,
		Identifier:        identifier,
		PersistentURL:     persistentURL,
		Protocol:          protocol,
		Authority:         authority,
		Separator:         "/",
		Publisher:         e.strOr("publisher", DefaultPublisher),
		PublicationDate:   publicationDate,
		StorageIdentifier: datasetStorage,
		DatasetType:       datasetType,
		DatasetVersion: document.DatasetVersion{
			ID:                           versionID,
			DatasetID:                    datasetID,
			DatasetPersistentID:          fmt.Sprintf("%s:%s/%s", protocol, authority, identifier),
			DatasetType:                  datasetType,
			StorageIdentifier:            versionStorage,
			VersionNumber:                e.intOr("versionNumber", 1),
			InternalVersionNumber:        e.intOr("internalVersionNumber", 1),
			VersionMinorNumber:           e.intOr("versionMinorNumber", 0),
			VersionState:                 e.strOr("versionState", DefaultVersionState),
			LatestVersionPublishingState: e.strOr("latestVersionPublishingState", DefaultVersionState),
			UNF:                          e.strOr("UNF", ""),
			LastUpdateTime:               e.strOr("lastUpdateTime", dateTime),
			ReleaseTime:                  e.strOr("releaseTime", ""),
			CreateTime:                   e.strOr("createTime", dateTime),
			PublicationDate:              publicationDate,
			CitationDate:                 e.strOr("citationDate", date),
			TermsOfUse:                   e.strOr("termsOfUse", ""),
			CitationRequirements:         e.strOr("citationRequirements", ""),
			Conditions:                   e.strOr("conditions", ""),
			TermsOfAccess:                e.strOr("termsOfAccess", ""),
			License: document.License{
				Name:                   e.strOr("licenseName", defaultLicense.Name),
				URI:                    e.strOr("licenseUri", defaultLicense.URI),
				IconURI:                e.strOr("licenseIconUri", defaultLicense.IconURI),
				RightsIdentifier:       e.strOr("rightsIdentifier", defaultLicense.RightsIdentifier),
				RightsIdentifierScheme: e.strOr("rightsIdentifierScheme", defaultLicense.RightsIdentifierScheme),
				SchemeURI:              e.strOr("schemeUri", defaultLicense.SchemeURI),
				LanguageCode:           e.strOr("languageCode", defaultLicense.LanguageCode),
			},
			FileAccessRequest: e.boolOr("fileAccessRequest", true),
			MetadataBlocks: document.MetadataBlocks{
				Citation: document.NewCitationBlock(),
			},
		},
	}
}

// randomHex returns n lowercase hex characters from the configured source.
func (a *Assembler) randomHex(n int) string {
	h := a.opts.RandomHex()
	for len(h) < n {
		h += a.opts.RandomHex()
	}

	return h[:n]
}

// envelopeColumns are consumed by the envelope rather than the directory.
var envelopeColumns = []string{
	"id", "versionId", "identifier", "protocol", "authority", "publisher",
	"publicationDate", "storageIdentifier", "datasetType", "versionNumber",
	"internalVersionNumber", "versionMinorNumber", "versionState",
	"latestVersionPublishingState", "UNF", "lastUpdateTime", "releaseTime",
	"createTime", "citationDate", "termsOfUse", "citationRequirements",
	"conditions", "termsOfAccess", "licenseName", "licenseUri", "licenseIconUri",
	"rightsIdentifier", "rightsIdentifierScheme", "schemeUri", "languageCode",
	"fileAccessRequest",
}
