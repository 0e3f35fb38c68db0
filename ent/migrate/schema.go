// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "document_id", Type: field.TypeString, Unique: true},
		{Name: "folder_path", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString},
		{Name: "mime_type", Type: field.TypeString, Nullable: true},
		{Name: "size_bytes", Type: field.TypeInt64, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "ocr_in_progress", "ocr_completed", "classifying", "classified", "scoring_classification", "scored_classification", "summarizing", "summarized", "scoring_summary", "scored_summary", "filing", "filed", "completed", "failed", "permanently_failed"}, Default: "pending"},
		{Name: "extracted_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "ocr_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "document_type", Type: field.TypeString, Nullable: true},
		{Name: "classification_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "classification_reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "structured_data", Type: field.TypeJSON, Nullable: true},
		{Name: "processing_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "max_retries", Type: field.TypeInt, Default: 3},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[5]},
			},
			{
				Name:    "document_document_type",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[8]},
			},
			{
				Name:    "document_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[5], DocumentsColumns[17]},
			},
			{
				Name:    "document_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[5], DocumentsColumns[18]},
			},
		},
	}
	// DocumentSeriesColumns holds the columns for the "document_series" table.
	DocumentSeriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "added_at", Type: field.TypeTime},
		{Name: "added_by", Type: field.TypeString, Default: "system"},
		{Name: "document_id", Type: field.TypeString},
		{Name: "series_id", Type: field.TypeString},
	}
	// DocumentSeriesTable holds the schema information for the "document_series" table.
	DocumentSeriesTable = &schema.Table{
		Name:       "document_series",
		Columns:    DocumentSeriesColumns,
		PrimaryKey: []*schema.Column{DocumentSeriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "document_series_documents_document",
				Columns:    []*schema.Column{DocumentSeriesColumns[3]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "document_series_series_series",
				Columns:    []*schema.Column{DocumentSeriesColumns[4]},
				RefColumns: []*schema.Column{SeriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "documentseries_document_id_series_id",
				Unique:  true,
				Columns: []*schema.Column{DocumentSeriesColumns[3], DocumentSeriesColumns[4]},
			},
			{
				Name:    "documentseries_series_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentSeriesColumns[4]},
			},
		},
	}
	// DocumentTagsColumns holds the columns for the "document_tags" table.
	DocumentTagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"system", "llm", "user"}, Default: "llm"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeString},
		{Name: "tag_id", Type: field.TypeString},
	}
	// DocumentTagsTable holds the schema information for the "document_tags" table.
	DocumentTagsTable = &schema.Table{
		Name:       "document_tags",
		Columns:    DocumentTagsColumns,
		PrimaryKey: []*schema.Column{DocumentTagsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "document_tags_documents_document",
				Columns:    []*schema.Column{DocumentTagsColumns[3]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "document_tags_tags_tag",
				Columns:    []*schema.Column{DocumentTagsColumns[4]},
				RefColumns: []*schema.Column{TagsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "documenttag_document_id_tag_id",
				Unique:  true,
				Columns: []*schema.Column{DocumentTagsColumns[3], DocumentTagsColumns[4]},
			},
			{
				Name:    "documenttag_tag_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentTagsColumns[4]},
			},
		},
	}
	// FilesColumns holds the columns for the "files" table.
	FilesColumns = []*schema.Column{
		{Name: "file_id", Type: field.TypeString, Unique: true},
		{Name: "tags", Type: field.TypeJSON},
		{Name: "tag_signature", Type: field.TypeString},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"llm", "user"}, Default: "llm"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "generating", "generated", "outdated", "regenerating", "permanently_failed"}, Default: "pending"},
		{Name: "summary_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "summary_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "last_generated_at", Type: field.TypeTime, Nullable: true},
		{Name: "processing_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "max_retries", Type: field.TypeInt, Default: 3},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FilesTable holds the schema information for the "files" table.
	FilesTable = &schema.Table{
		Name:       "files",
		Columns:    FilesColumns,
		PrimaryKey: []*schema.Column{FilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "file_source_tag_signature",
				Unique:  true,
				Columns: []*schema.Column{FilesColumns[3], FilesColumns[2]},
			},
			{
				Name:    "file_status",
				Unique:  false,
				Columns: []*schema.Column{FilesColumns[4]},
			},
			{
				Name:    "file_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{FilesColumns[4], FilesColumns[13]},
			},
		},
	}
	// FileDocumentsColumns holds the columns for the "file_documents" table.
	FileDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "added_at", Type: field.TypeTime},
		{Name: "file_id", Type: field.TypeString},
		{Name: "document_id", Type: field.TypeString},
	}
	// FileDocumentsTable holds the schema information for the "file_documents" table.
	FileDocumentsTable = &schema.Table{
		Name:       "file_documents",
		Columns:    FileDocumentsColumns,
		PrimaryKey: []*schema.Column{FileDocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "file_documents_files_file",
				Columns:    []*schema.Column{FileDocumentsColumns[2]},
				RefColumns: []*schema.Column{FilesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "file_documents_documents_document",
				Columns:    []*schema.Column{FileDocumentsColumns[3]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "filedocument_file_id_document_id",
				Unique:  true,
				Columns: []*schema.Column{FileDocumentsColumns[2], FileDocumentsColumns[3]},
			},
			{
				Name:    "filedocument_document_id",
				Unique:  false,
				Columns: []*schema.Column{FileDocumentsColumns[3]},
			},
		},
	}
	// PromptsColumns holds the columns for the "prompts" table.
	PromptsColumns = []*schema.Column{
		{Name: "prompt_id", Type: field.TypeString, Unique: true},
		{Name: "prompt_type", Type: field.TypeEnum, Enums: []string{"classifier", "summarizer", "series_detector", "file_summarizer", "series_summarizer"}},
		{Name: "document_type", Type: field.TypeString, Nullable: true},
		{Name: "version", Type: field.TypeInt},
		{Name: "prompt_text", Type: field.TypeString, Size: 2147483647},
		{Name: "performance_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "can_evolve", Type: field.TypeBool, Default: true},
		{Name: "score_ceiling", Type: field.TypeFloat64, Nullable: true},
		{Name: "regenerates_on_update", Type: field.TypeBool, Default: false},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PromptsTable holds the schema information for the "prompts" table.
	PromptsTable = &schema.Table{
		Name:       "prompts",
		Columns:    PromptsColumns,
		PrimaryKey: []*schema.Column{PromptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "prompt_prompt_type_document_type",
				Unique:  false,
				Columns: []*schema.Column{PromptsColumns[1], PromptsColumns[2]},
			},
			{
				Name:    "prompt_prompt_type_is_active",
				Unique:  false,
				Columns: []*schema.Column{PromptsColumns[1], PromptsColumns[9]},
			},
		},
	}
	// SeriesColumns holds the columns for the "series" table.
	SeriesColumns = []*schema.Column{
		{Name: "series_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "entity", Type: field.TypeString},
		{Name: "series_type", Type: field.TypeString},
		{Name: "frequency", Type: field.TypeString, Default: "irregular"},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "owner", Type: field.TypeString, Default: ""},
		{Name: "first_document_date", Type: field.TypeTime, Nullable: true},
		{Name: "last_document_date", Type: field.TypeTime, Nullable: true},
		{Name: "document_count", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "completed", "archived"}, Default: "active"},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"llm", "user"}, Default: "llm"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SeriesTable holds the schema information for the "series" table.
	SeriesTable = &schema.Table{
		Name:       "series",
		Columns:    SeriesColumns,
		PrimaryKey: []*schema.Column{SeriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "series_entity_series_type_owner",
				Unique:  true,
				Columns: []*schema.Column{SeriesColumns[2], SeriesColumns[3], SeriesColumns[7]},
			},
			{
				Name:    "series_status",
				Unique:  false,
				Columns: []*schema.Column{SeriesColumns[11]},
			},
		},
	}
	// TagsColumns holds the columns for the "tags" table.
	TagsColumns = []*schema.Column{
		{Name: "tag_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TagsTable holds the schema information for the "tags" table.
	TagsTable = &schema.Table{
		Name:       "tags",
		Columns:    TagsColumns,
		PrimaryKey: []*schema.Column{TagsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tag_name",
				Unique:  false,
				Columns: []*schema.Column{TagsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		DocumentSeriesTable,
		DocumentTagsTable,
		FilesTable,
		FileDocumentsTable,
		PromptsTable,
		SeriesTable,
		TagsTable,
	}
)

func init() {
	DocumentSeriesTable.ForeignKeys[0].RefTable = DocumentsTable
	DocumentSeriesTable.ForeignKeys[1].RefTable = SeriesTable
	DocumentTagsTable.ForeignKeys[0].RefTable = DocumentsTable
	DocumentTagsTable.ForeignKeys[1].RefTable = TagsTable
	FileDocumentsTable.ForeignKeys[0].RefTable = FilesTable
	FileDocumentsTable.ForeignKeys[1].RefTable = DocumentsTable
}
