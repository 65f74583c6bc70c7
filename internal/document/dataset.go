package document

import "encoding/json"

// Dataset is the document produced for one input row.
type Dataset struct {
	ID                int            `json:"id"`
	Identifier        string         `json:"identifier"`
	PersistentURL     string         `json:"persistentUrl"`
	Protocol          string         `json:"protocol"`
	Authority         string         `json:"authority"`
	Separator         string         `json:"separator"`
	Publisher         string         `json:"publisher"`
	PublicationDate   string         `json:"publicationDate"`
	StorageIdentifier string         `json:"storageIdentifier"`
	DatasetType       string         `json:"datasetType"`
	DatasetVersion    DatasetVersion `json:"datasetVersion"`

	// Citation is the free-text citation string, separate from the citation block.
	Citation string `json:"citation,omitempty"`
}

// DatasetVersion is the versioned envelope holding the metadata blocks.
type DatasetVersion struct {
	ID                           int            `json:"id"`
	DatasetID                    int            `json:"datasetId"`
	DatasetPersistentID          string         `json:"datasetPersistentId"`
	DatasetType                  string         `json:"datasetType"`
	StorageIdentifier            string         `json:"storageIdentifier"`
	VersionNumber                int            `json:"versionNumber"`
	InternalVersionNumber        int            `json:"internalVersionNumber"`
	VersionMinorNumber           int            `json:"versionMinorNumber"`
	VersionState                 string         `json:"versionState"`
	LatestVersionPublishingState string         `json:"latestVersionPublishingState"`
	UNF                          string         `json:"UNF"`
	LastUpdateTime               string         `json:"lastUpdateTime"`
	ReleaseTime                  string         `json:"releaseTime"`
	CreateTime                   string         `json:"createTime"`
	PublicationDate              string         `json:"publicationDate"`
	CitationDate                 string         `json:"citationDate"`
	TermsOfUse                   string         `json:"termsOfUse"`
	CitationRequirements         string         `json:"citationRequirements"`
	Conditions                   string         `json:"conditions"`
	TermsOfAccess                string         `json:"termsOfAccess"`
	License                      License        `json:"license"`
	FileAccessRequest            bool           `json:"fileAccessRequest"`
	MetadataBlocks               MetadataBlocks `json:"metadataBlocks"`

	// Files is the raw file list, each element kept as the JSON it was given.
	Files []json.RawMessage `json:"files,omitempty"`
}

// License describes the dataset's terms.
type License struct {
	Name                   string `json:"name"`
	URI                    string `json:"uri"`
	IconURI                string `json:"iconUri"`
	RightsIdentifier       string `json:"rightsIdentifier"`
	RightsIdentifierScheme string `json:"rightsIdentifierScheme"`
	SchemeURI              string `json:"schemeUri"`
	LanguageCode           string `json:"languageCode"`
}

// MetadataBlocks holds the citation block and the optional discipline blocks.
type MetadataBlocks struct {
	Citation      MetadataBlock  `json:"citation"`
	Geospatial    *MetadataBlock `json:"geospatial,omitempty"`
	SocialScience *MetadataBlock `json:"socialscience,omitempty"`
}

// CitationBlock returns the dataset's citation block.
func (d *Dataset) CitationBlock() *MetadataBlock {
	return &d.DatasetVersion.MetadataBlocks.Citation
}
