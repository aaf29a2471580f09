package config

const (
	// MaxProjectTitleLength is the maximum length for project titles.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and provide
	// reasonable UX (titles should be short and descriptive).
	MaxProjectTitleLength = 255

	// MaxProjectDescriptionLength bounds the free-form description field.
	MaxProjectDescriptionLength = 5000

	// MaxCommentLength is the maximum length for a single comment.
	// Long enough for a meaningful reply, short enough to keep the
	// embedded comment list on a project row manageable.
	MaxCommentLength = 2000

	// MaxCommentsPerProject caps the embedded comment list. Every comment
	// lives inside the project row, so an unbounded list would grow a
	// single row without limit.
	MaxCommentsPerProject = 1000
)
