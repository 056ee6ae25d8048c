package ports

// CompileCache records source-content digests of successfully compiled
// files so the CLI can skip unchanged sources. The core engine never
// consults it.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CompileCache interface {
	// Get returns the recorded digest for a source path, or "" when the
	// path has never been compiled.
	Get(path string) (string, error)

	// Put records the digest of a successfully compiled source.
	Put(path, digest string) error
}
