package invoice

import (
	"fmt"
	"regexp"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// ArtifactName derives the filesystem-safe PDF name for a generated invoice.
// Every character outside [A-Za-z0-9_.-] becomes an underscore and each
// segment is trimmed of leading/trailing underscores and dots, so the result
// carries no path-traversal characters. Regenerating the same supplier and
// invoice number yields the same name; the previous file is overwritten.
func ArtifactName(supplierName, invoiceNumber string) string {
	return fmt.Sprintf("LENGOLF_%s_Inv_%s.pdf", cleanSegment(supplierName), cleanSegment(invoiceNumber))
}

func cleanSegment(s string) string {
	return strings.Trim(unsafeFilenameChars.ReplaceAllString(s, "_"), "_.")
}
