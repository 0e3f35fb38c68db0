// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/docfold/docfold/ent/document"
	"github.com/docfold/docfold/ent/documentseries"
	"github.com/docfold/docfold/ent/documenttag"
	"github.com/docfold/docfold/ent/file"
	"github.com/docfold/docfold/ent/filedocument"
	"github.com/docfold/docfold/ent/prompt"
	"github.com/docfold/docfold/ent/schema"
	"github.com/docfold/docfold/ent/series"
	"github.com/docfold/docfold/ent/tag"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescRetryCount is the schema descriptor for retry_count field.
	documentDescRetryCount := documentFields[14].Descriptor()
	// document.DefaultRetryCount holds the default value on creation for the retry_count field.
	document.DefaultRetryCount = documentDescRetryCount.Default.(int)
	// documentDescMaxRetries is the schema descriptor for max_retries field.
	documentDescMaxRetries := documentFields[15].Descriptor()
	// document.DefaultMaxRetries holds the default value on creation for the max_retries field.
	document.DefaultMaxRetries = documentDescMaxRetries.Default.(int)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[17].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[18].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	documentseriesFields := schema.DocumentSeries{}.Fields()
	_ = documentseriesFields
	// documentseriesDescAddedAt is the schema descriptor for added_at field.
	documentseriesDescAddedAt := documentseriesFields[3].Descriptor()
	// documentseries.DefaultAddedAt holds the default value on creation for the added_at field.
	documentseries.DefaultAddedAt = documentseriesDescAddedAt.Default.(func() time.Time)
	// documentseriesDescAddedBy is the schema descriptor for added_by field.
	documentseriesDescAddedBy := documentseriesFields[4].Descriptor()
	// documentseries.DefaultAddedBy holds the default value on creation for the added_by field.
	documentseries.DefaultAddedBy = documentseriesDescAddedBy.Default.(string)
	documenttagFields := schema.DocumentTag{}.Fields()
	_ = documenttagFields
	// documenttagDescCreatedAt is the schema descriptor for created_at field.
	documenttagDescCreatedAt := documenttagFields[4].Descriptor()
	// documenttag.DefaultCreatedAt holds the default value on creation for the created_at field.
	documenttag.DefaultCreatedAt = documenttagDescCreatedAt.Default.(func() time.Time)
	fileFields := schema.File{}.Fields()
	_ = fileFields
	// fileDescRetryCount is the schema descriptor for retry_count field.
	fileDescRetryCount := fileFields[9].Descriptor()
	// file.DefaultRetryCount holds the default value on creation for the retry_count field.
	file.DefaultRetryCount = fileDescRetryCount.Default.(int)
	// fileDescMaxRetries is the schema descriptor for max_retries field.
	fileDescMaxRetries := fileFields[10].Descriptor()
	// file.DefaultMaxRetries holds the default value on creation for the max_retries field.
	file.DefaultMaxRetries = fileDescMaxRetries.Default.(int)
	// fileDescCreatedAt is the schema descriptor for created_at field.
	fileDescCreatedAt := fileFields[12].Descriptor()
	// file.DefaultCreatedAt holds the default value on creation for the created_at field.
	file.DefaultCreatedAt = fileDescCreatedAt.Default.(func() time.Time)
	// fileDescUpdatedAt is the schema descriptor for updated_at field.
	fileDescUpdatedAt := fileFields[13].Descriptor()
	// file.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	file.DefaultUpdatedAt = fileDescUpdatedAt.Default.(func() time.Time)
	// file.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	file.UpdateDefaultUpdatedAt = fileDescUpdatedAt.UpdateDefault.(func() time.Time)
	filedocumentFields := schema.FileDocument{}.Fields()
	_ = filedocumentFields
	// filedocumentDescAddedAt is the schema descriptor for added_at field.
	filedocumentDescAddedAt := filedocumentFields[3].Descriptor()
	// filedocument.DefaultAddedAt holds the default value on creation for the added_at field.
	filedocument.DefaultAddedAt = filedocumentDescAddedAt.Default.(func() time.Time)
	promptFields := schema.Prompt{}.Fields()
	_ = promptFields
	// promptDescCanEvolve is the schema descriptor for can_evolve field.
	promptDescCanEvolve := promptFields[6].Descriptor()
	// prompt.DefaultCanEvolve holds the default value on creation for the can_evolve field.
	prompt.DefaultCanEvolve = promptDescCanEvolve.Default.(bool)
	// promptDescRegeneratesOnUpdate is the schema descriptor for regenerates_on_update field.
	promptDescRegeneratesOnUpdate := promptFields[8].Descriptor()
	// prompt.DefaultRegeneratesOnUpdate holds the default value on creation for the regenerates_on_update field.
	prompt.DefaultRegeneratesOnUpdate = promptDescRegeneratesOnUpdate.Default.(bool)
	// promptDescIsActive is the schema descriptor for is_active field.
	promptDescIsActive := promptFields[9].Descriptor()
	// prompt.DefaultIsActive holds the default value on creation for the is_active field.
	prompt.DefaultIsActive = promptDescIsActive.Default.(bool)
	// promptDescCreatedAt is the schema descriptor for created_at field.
	promptDescCreatedAt := promptFields[10].Descriptor()
	// prompt.DefaultCreatedAt holds the default value on creation for the created_at field.
	prompt.DefaultCreatedAt = promptDescCreatedAt.Default.(func() time.Time)
	// promptDescUpdatedAt is the schema descriptor for updated_at field.
	promptDescUpdatedAt := promptFields[11].Descriptor()
	// prompt.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	prompt.DefaultUpdatedAt = promptDescUpdatedAt.Default.(func() time.Time)
	// prompt.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	prompt.UpdateDefaultUpdatedAt = promptDescUpdatedAt.UpdateDefault.(func() time.Time)
	seriesFields := schema.Series{}.Fields()
	_ = seriesFields
	// seriesDescFrequency is the schema descriptor for frequency field.
	seriesDescFrequency := seriesFields[4].Descriptor()
	// series.DefaultFrequency holds the default value on creation for the frequency field.
	series.DefaultFrequency = seriesDescFrequency.Default.(string)
	// seriesDescOwner is the schema descriptor for owner field.
	seriesDescOwner := seriesFields[7].Descriptor()
	// series.DefaultOwner holds the default value on creation for the owner field.
	series.DefaultOwner = seriesDescOwner.Default.(string)
	// seriesDescDocumentCount is the schema descriptor for document_count field.
	seriesDescDocumentCount := seriesFields[10].Descriptor()
	// series.DefaultDocumentCount holds the default value on creation for the document_count field.
	series.DefaultDocumentCount = seriesDescDocumentCount.Default.(int)
	// seriesDescCreatedAt is the schema descriptor for created_at field.
	seriesDescCreatedAt := seriesFields[13].Descriptor()
	// series.DefaultCreatedAt holds the default value on creation for the created_at field.
	series.DefaultCreatedAt = seriesDescCreatedAt.Default.(func() time.Time)
	// seriesDescUpdatedAt is the schema descriptor for updated_at field.
	seriesDescUpdatedAt := seriesFields[14].Descriptor()
	// series.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	series.DefaultUpdatedAt = seriesDescUpdatedAt.Default.(func() time.Time)
	// series.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	series.UpdateDefaultUpdatedAt = seriesDescUpdatedAt.UpdateDefault.(func() time.Time)
	tagFields := schema.Tag{}.Fields()
	_ = tagFields
	// tagDescCreatedAt is the schema descriptor for created_at field.
	tagDescCreatedAt := tagFields[2].Descriptor()
	// tag.DefaultCreatedAt holds the default value on creation for the created_at field.
	tag.DefaultCreatedAt = tagDescCreatedAt.Default.(func() time.Time)
}
