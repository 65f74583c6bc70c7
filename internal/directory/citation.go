package directory

// Field names with special handling elsewhere in the converter.
const (
	FieldAuthor         = "author"
	FieldDatasetContact = "datasetContact"
	FieldDescription    = "dsDescription"
	FieldDepositor      = "depositor"

	SubfieldAuthorName         = "authorName"
	SubfieldContactName        = "datasetContactName"
	SubfieldContactAffiliation = "datasetContactAffiliation"
	SubfieldContactEmail       = "datasetContactEmail"
	SubfieldDescriptionValue   = "dsDescriptionValue"
	SubfieldDescriptionDate    = "dsDescriptionDate"
)

// yearFields are single primitives whose value is collapsed to a four digit year.
var yearFields = map[string]bool{
	"productionDate":   true,
	"distributionDate": true,
	"dateOfDeposit":    true,
}

// IsYearField reports whether the field's value is normalised to a year.
func IsYearField(name string) bool {
	return yearFields[name]
}

// citationFields is the built-in citation block directory, in output order.
var citationFields = []Descriptor{
	{"title", Single, TypeClassPrimitive},
	{"subtitle", Single, TypeClassPrimitive},
	{"alternativeTitle", Multiple, TypeClassPrimitive},
	{"otherId", Multiple, TypeClassCompound},
	{FieldAuthor, Multiple, TypeClassCompound},
	{FieldDatasetContact, Multiple, TypeClassCompound},
	{FieldDescription, Multiple, TypeClassCompound},
	{"subject", Multiple, TypeClassVocabulary},
	{"keyword", Multiple, TypeClassCompound},
	{"topicClassification", Multiple, TypeClassCompound},
	{"publication", Multiple, TypeClassCompound},
	{"notesText", Single, TypeClassPrimitive},
	{"language", Multiple, TypeClassVocabulary},
	{"producer", Multiple, TypeClassCompound},
	{"productionDate", Single, TypeClassPrimitive},
	{"productionPlace", Multiple, TypeClassPrimitive},
	{"contributor", Multiple, TypeClassCompound},
	{"grantNumber", Multiple, TypeClassCompound},
	{"distributor", Multiple, TypeClassCompound},
	{"distributionDate", Single, TypeClassPrimitive},
	{FieldDepositor, Single, TypeClassPrimitive},
	{"dateOfDeposit", Single, TypeClassPrimitive},
	{"timePeriodCovered", Multiple, TypeClassCompound},
	{"dateOfCollection", Multiple, TypeClassCompound},
	{"kindOfData", Multiple, TypeClassPrimitive},
	{"series", Multiple, TypeClassCompound},
	{"software", Multiple, TypeClassCompound},
	{"relatedMaterial", Multiple, TypeClassPrimitive},
	{"relatedDatasets", Multiple, TypeClassPrimitive},
	{"otherReferences", Multiple, TypeClassPrimitive},
	{"dataSources", Multiple, TypeClassPrimitive},
	{"originOfSources", Single, TypeClassPrimitive},
	{"characteristicOfSources", Single, TypeClassPrimitive},
	{"accessToSources", Single, TypeClassPrimitive},
}

// compoundSubfields is the default compound schema. Order is positional.
var compoundSubfields = map[string][]string{
	"otherId":             {"otherIdAgency", "otherIdValue"},
	FieldAuthor:           {SubfieldAuthorName, "authorAffiliation", "authorIdentifierScheme", "authorIdentifier"},
	FieldDatasetContact:   {SubfieldContactName, SubfieldContactAffiliation, SubfieldContactEmail},
	FieldDescription:      {SubfieldDescriptionValue, SubfieldDescriptionDate},
	"keyword":             {"keywordValue", "keywordVocabulary", "keywordVocabularyURI"},
	"topicClassification": {"topicClassValue", "topicClassVocab", "topicClassVocabURI"},
	"publication": {
		"publicationRelationType", "publicationCitation", "publicationIDType",
		"publicationIDNumber", "publicationURL",
	},
	"producer": {
		"producerName", "producerAffiliation", "producerAbbreviation",
		"producerURL", "producerLogoURL",
	},
	"contributor": {"contributorType", "contributorName"},
	"grantNumber": {"grantNumberAgency", "grantNumberValue"},
	"distributor": {
		"distributorName", "distributorAffiliation", "distributorAbbreviation",
		"distributorURL", "distributorLogoURL",
	},
	"timePeriodCovered": {"timePeriodCoveredStart", "timePeriodCoveredEnd"},
	"dateOfCollection":  {"dateOfCollectionStart", "dateOfCollectionEnd"},
	"series":            {"seriesName", "seriesInformation"},
	"software":          {"softwareName", "softwareVersion"},
}
