package nibble

// Case selects the digit alphabet used when encoding.
type Case string

const (
	// CaseLower encodes with 0-9a-f.
	CaseLower Case = "lower"

	// CaseUpper encodes with 0-9A-F.
	CaseUpper Case = "upper"
)

// validCases contains all valid cases.
var validCases = map[Case]bool{
	CaseLower: true,
	CaseUpper: true,
}

// IsValidCase returns true if c is a known case.
func IsValidCase(c Case) bool {
	return validCases[c]
}

// EncodeCase returns the hex encoding of src in the given case.
// An unknown case encodes lowercase.
func EncodeCase(src []byte, c Case) string {
	if c == CaseUpper {
		return EncodeUpper(src)
	}
	return Encode(src)
}
