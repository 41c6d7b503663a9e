package ports

// FeatureExtractor turns a free-text description into an opaque numeric
// feature vector. The vector is deterministic per description; no contract is
// made about how it is computed.
type FeatureExtractor interface {
	Extract(description string) []float64
}
