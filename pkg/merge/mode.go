package merge

import (
	"path/filepath"
	"strings"

	"github.com/agentstation/stigmerge/pkg/constants"
)

// Mode parameterizes the two CLI verbs. The engine behaves identically in
// both; only the output name and the wording of skip messages differ.
type Mode struct {
	// Name is the verb that selected the mode ("merge" or "copy").
	Name string `json:"name" yaml:"name"`
	// Tag is inserted before the checklist extension of the output file.
	Tag string `json:"tag" yaml:"tag"`
	// SkipLabel names the target document in skip messages.
	SkipLabel string `json:"skip_label" yaml:"skip_label"`
}

// Built-in modes.
var (
	ModeMerge = Mode{Name: "merge", Tag: constants.MergedTag, SkipLabel: "Master"}
	ModeCopy  = Mode{Name: "copy", Tag: constants.CopiedTag, SkipLabel: "Target"}
)

func (m Mode) String() string {
	return m.Name
}

// OutputPath derives the output file name from the target path:
// foo.ckl becomes foo.merged.ckl (or foo.copied.ckl). A path with no
// extension gets ".<tag>.ckl" appended.
func OutputPath(targetPath string, mode Mode) string {
	ext := filepath.Ext(targetPath)
	if ext == "" {
		return targetPath + "." + mode.Tag + constants.ChecklistExtension
	}
	return strings.TrimSuffix(targetPath, ext) + "." + mode.Tag + ext
}
