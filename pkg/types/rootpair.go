package types

// RootPair is one search path entry: a writable user root and the read-only
// shipped root contributed by the same package (or by the global defaults).
type RootPair struct {
	User    string `json:"user" yaml:"user"`
	Shipped string `json:"shipped" yaml:"shipped"`
}
