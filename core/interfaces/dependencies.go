// ABOUTME: Dependency container handed to the core pipeline services
// ABOUTME: Built once in cmd/api and threaded through every constructor

package interfaces

// Dependencies bundles the infrastructure the pipelines need. Tests build
// one from mocks; cmd/api builds one from the configured implementations.
type Dependencies struct {
	Cache      Cache
	HTTPClient HTTPClient
	Logger     Logger
}
