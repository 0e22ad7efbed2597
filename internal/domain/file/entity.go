package file

// Category classifies a stored file. It determines the storage
// subdirectory, the URL path segment and the `type` field in upload
// responses. CategoryOther is reserved for future types — the upload
// allow-list never produces it, but its directory is a valid fetch and
// delete target.
type Category string

const (
	CategoryImage Category = "image"
	CategoryPDF   Category = "pdf"
	CategoryOther Category = "other"
)

// Dir returns the storage subdirectory / URL path segment for the category.
func (c Category) Dir() string {
	switch c {
	case CategoryImage:
		return "images"
	case CategoryPDF:
		return "pdfs"
	default:
		return "other"
	}
}

// allowedTypes maps accepted content types to their category.
// Anything not in this table is rejected at upload.
var allowedTypes = map[string]Category{
	"image/jpeg":      CategoryImage,
	"image/jpg":       CategoryImage,
	"image/png":       CategoryImage,
	"image/gif":       CategoryImage,
	"image/webp":      CategoryImage,
	"application/pdf": CategoryPDF,
}

// extContentTypes maps file extensions to content types. Used as a
// fallback when a multipart part declares no type, and when serving
// stored files back.
var extContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".pdf":  "application/pdf",
}

// categorySegments maps URL path segments to categories.
var categorySegments = map[string]Category{
	"images": CategoryImage,
	"pdfs":   CategoryPDF,
	"other":  CategoryOther,
}

// CategoryForContentType returns the category for an accepted content
// type, or false if the type is not allowed.
func CategoryForContentType(contentType string) (Category, bool) {
	c, ok := allowedTypes[contentType]
	return c, ok
}

// CategoryForSegment resolves a URL path segment (images, pdfs, other)
// to its category.
func CategoryForSegment(segment string) (Category, bool) {
	c, ok := categorySegments[segment]
	return c, ok
}

// UploadResult is the response payload of a successful upload. The URL
// is the sole durable reference to the stored file.
type UploadResult struct {
	URL              string   `json:"url"`
	Filename         string   `json:"filename"`
	OriginalFilename string   `json:"original_filename"`
	ContentType      string   `json:"content_type"`
	Size             int64    `json:"size"`
	Type             Category `json:"type"`
}
