package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MaxUploadBytes caps every accepted upload at 10 MB. Enforced both by the
// wizard before any network call and by the server on receipt.
const MaxUploadBytes = 10 << 20

var resumeExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

var evidenceExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".webp": {},
}

// ValidateResumeUpload checks a candidate resume file against the size cap and
// the document allow-list. The returned error wraps ErrUploadRejected with the
// specific reason.
func ValidateResumeUpload(filename string, size int64) error {
	return validateUpload(filename, size, resumeExtensions, "PDF, DOC or DOCX")
}

// ValidateEvidenceUpload checks a fraud-report evidence file, which may also
// be an image.
func ValidateEvidenceUpload(filename string, size int64) error {
	return validateUpload(filename, size, evidenceExtensions, "image, PDF, DOC or DOCX")
}

func validateUpload(filename string, size int64, allowed map[string]struct{}, hint string) error {
	if size > MaxUploadBytes {
		return fmt.Errorf("%w: file exceeds %d MB limit", ErrUploadRejected, MaxUploadBytes>>20)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowed[ext]; !ok {
		return fmt.Errorf("%w: %q is not an accepted type (%s)", ErrUploadRejected, ext, hint)
	}
	return nil
}
