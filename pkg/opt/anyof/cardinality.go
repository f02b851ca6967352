package anyof

// Cardinality is an enumerator type for Cardinality* constants.
type Cardinality int

//go:generate go tool github.com/dmarkham/enumer -type Cardinality -trimprefix=Cardinality -transform=lower
const (
	CardinalityNone Cardinality = iota
	CardinalitySingle
	CardinalityMany
)
