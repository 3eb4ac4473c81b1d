//go:build !(goexperiment.simd && amd64)

package simdjson

// tryVectorBackend reports that no wide-vector backend is compiled in.
// Build with GOEXPERIMENT=simd on amd64 to get backend_vector_amd64.go's
// archsimd-backed implementation instead; every other target runs the
// portable scalarBackend.
func tryVectorBackend() (backend, bool) {
	return nil, false
}
