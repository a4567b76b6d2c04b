package mdb

import (
	"fmt"
	"path/filepath"
)

const contourSuffix = "MIX_vamp_melodia-contours_melodia-contours_contoursall.csv"

// Paths resolves the dataset file conventions for a MedleyDB checkout.
type Paths struct {
	// Root of the MedleyDB tree (holds the Annotations directory).
	MedleyDBPath string

	// Directory of precomputed Melodia contour files.
	ContoursDir string
}

// ContourFile returns the path of a track's contour candidates file.
func (p Paths) ContourFile(track string) string {
	return filepath.Join(p.ContoursDir, fmt.Sprintf("%s_%s", track, contourSuffix))
}

// AnnotationFile returns the path of a track's melody annotation file for
// the given melody type (one of [1, 2, 3]).
func (p Paths) AnnotationFile(track string, melodyType int) string {
	melDir := fmt.Sprintf("MELODY%d", melodyType)
	name := fmt.Sprintf("%s_MELODY%d.csv", track, melodyType)
	return filepath.Join(p.MedleyDBPath, "Annotations", "Melody_Annotations", melDir, name)
}
