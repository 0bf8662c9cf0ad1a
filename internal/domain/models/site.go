// internal/domain/models/site.go
package models

// DefaultSiteName is used in page titles and headers.
const DefaultSiteName = "Quillpad"
