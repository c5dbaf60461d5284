package cache

// Keyer builds cache keys for rendered artifacts.
type Keyer interface {
	// ArtifactKey identifies a rendered transition diagram.
	ArtifactKey(from, to string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the inputs that change a rendered diagram.
type ArtifactKeyOpts struct {
	Format    string   `json:"format"`
	Strategy  string   `json:"strategy"`
	Direction string   `json:"direction"`
	MaxCycles int      `json:"max_cycles"`
	Detailed  bool     `json:"detailed"`
	Pools     []string `json:"pools"`
}

// DefaultKeyer hashes every input into the key.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey implements Keyer. Keys have the form "artifact:<sha256>".
func (DefaultKeyer) ArtifactKey(from, to string, opts ArtifactKeyOpts) string {
	return "artifact:" + digest(from, to, opts)
}

var _ Keyer = DefaultKeyer{}
