package treetext

const (
	// SectionOpen and SectionClose wrap a section path: [a/b/c]
	SectionOpen  = "["
	SectionClose = "]"

	// PathSeparator separates the segments of a section path.
	PathSeparator = "/"

	// Assignment separates an entry name from its value.
	Assignment = "="

	// CommentPrefix and AltCommentPrefix start whole-line comments.
	CommentPrefix    = "#"
	AltCommentPrefix = ";"

	// Quote delimits quoted names, segments and string values.
	Quote = "\""

	// Literal values.
	LiteralTrue  = "true"
	LiteralFalse = "false"
	LiteralNull  = "null"
)

const (
	// ScannerInitialBufferSize is the initial line buffer.
	ScannerInitialBufferSize = 64 * 1024

	// ScannerMaxLineSize is the longest accepted line.
	ScannerMaxLineSize = 16 * 1024 * 1024
)

// Charset names accepted by Options.Charset.
const (
	CharsetUTF8        = "utf-8"
	CharsetWindows1252 = "windows-1252"
	CharsetLatin1      = "iso-8859-1"
)
