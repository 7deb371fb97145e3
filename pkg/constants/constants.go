// Package constants provides shared constants used throughout the stigmerge codebase.
// This includes file permissions, checklist vocabulary and output naming values
// that must stay consistent between the engine and the CLI.
package constants

import "time"

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Checklist vocabulary
const (
	// ChecklistExtension is the STIG Viewer checklist file extension
	ChecklistExtension = ".ckl"

	// StigIDName is the SID_NAME whose SID_DATA identifies a STIG within a checklist
	StigIDName = "stigid"

	// VulnNumAttribute is the VULN_ATTRIBUTE whose ATTRIBUTE_DATA identifies a vulnerability
	VulnNumAttribute = "Vuln_Num"

	// CCIRefAttribute is the VULN_ATTRIBUTE carrying a CCI reference (zero or more per vulnerability)
	CCIRefAttribute = "CCI_REF"
)

// Output mode tags inserted before the checklist extension
const (
	// MergedTag names the output of the merge command (foo.merged.ckl)
	MergedTag = "merged"

	// CopiedTag names the output of the copy command (foo.copied.ckl)
	CopiedTag = "copied"
)

// TimeFormatLog is the format used in log files
const TimeFormatLog = "2006-01-02 15:04:05.000"

// CCI list distribution
const (
	// CCIListFile is the file name DISA ships the CCI list under, inside
	// the published archive and in the user's stigmerge directory.
	CCIListFile = "U_CCI_List.xml"

	// CCIListURL is where DISA publishes the CCI list archive.
	CCIListURL = "https://dl.dod.cyber.mil/wp-content/uploads/stigs/zip/U_CCI_List.zip"

	// DefaultHTTPTimeout bounds a CCI list download.
	DefaultHTTPTimeout = 2 * time.Minute

	// MaxCCIListSize caps the bytes read from a download or archive entry.
	MaxCCIListSize = 64 << 20
)
