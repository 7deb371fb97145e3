// Package embedded holds reference data compiled into the stigmerge binary.
package embedded

import _ "embed"

//go:generate go run ../../cmd/stigmerge cci update --output cci/U_CCI_List.xml

// CCIList is the DISA Control Correlation Identifier list (U_CCI_List.xml)
// as shipped with STIG Viewer. It maps CCI ids to NIST SP 800-53 control
// indexes. Refresh it with go generate before a release.
//
//go:embed cci/U_CCI_List.xml
var CCIList []byte
