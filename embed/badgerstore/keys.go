package badgerstore

// Key prefixes for different data types
const (
	modelMetaKey     = "embmeta"
	termRecordPrefix = "embterm"
)

// makeTermKey generates a key for a vocabulary term record.
func makeTermKey(term string) []byte {
	return []byte(termRecordPrefix + ":" + term)
}
