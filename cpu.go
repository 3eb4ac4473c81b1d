package simdjson

import (
	"sync"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// SupportedCPU reports whether the host CPU has the features the
// widened backend wants (AVX2+CLMUL on amd64, ASIMD on arm64).
// Grounded on the teacher's simdjson_amd64.go SupportedCPU, which
// probed exactly AVX2+CLMUL via the same cpuid package; extended to
// arm64 per spec.md §2's requirement that C2 cover NEON as one of the
// supported ISAs, using golang.org/x/sys/cpu for that probe since
// klauspost/cpuid/v2's ARM feature set is amd64-first. No arm64 vector
// backend is compiled in (see backend_vector_stub.go), so on arm64
// detectBackend binds scalarBackend whatever this reports.
func SupportedCPU() bool {
	if cpuid.CPU.Supports(cpuid.AVX2, cpuid.CLMUL) {
		return true
	}
	return cpu.ARM64.HasASIMD
}

var detectOnce sync.Once

// detectBackend probes CPU features exactly once per process and
// binds selectedBackend to the widest available implementation,
// matching spec.md §2's "Runtime ISA dispatch: at entry, the
// implementation probes CPU features once and binds function pointers
// to the widest available C2 backend; the portable fallback is always
// available."
func detectBackend() backend {
	detectOnce.Do(func() {
		if vb, ok := tryVectorBackend(); ok && SupportedCPU() {
			selectedBackend = vb
			return
		}
		selectedBackend = scalarBackend{}
	})
	return selectedBackend
}
