package retrofit

// SerializedName declares the wire-format key a model field maps to when an
// external serializer encodes or decodes it.
type SerializedName struct {
	name string
}

// NewSerializedName creates a field rename marker. The name is stored
// verbatim, including the empty string; rejecting unusable names is left to
// the serializer that consumes the marker.
func NewSerializedName(name string) SerializedName {
	return SerializedName{name: name}
}

// Name returns the wire-format key exactly as supplied at construction
func (s SerializedName) Name() string {
	return s.name
}
