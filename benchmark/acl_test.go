package benchmark

import (
	"net/http"
	"testing"
)

// Benchmarks run against an already-running server, e.g.:
//
//	keywhizctl server
//	go test -bench . ./benchmark/...
//
// They assume a client "web-frontend" enrolled in a group that has been
// granted a secret "db-password".

func BenchmarkClientSecrets(b *testing.B) {
	b.Run("GET /clients/{name}/secrets", func(b *testing.B) {

		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			r, _ := http.NewRequest("GET", "http://localhost:8080/clients/web-frontend/secrets", nil)
			_, _ = http.DefaultClient.Do(r)
		}
	})

	b.Run("GET /clients/{name}/secrets/{secret}", func(b *testing.B) {

		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			r, _ := http.NewRequest("GET", "http://localhost:8080/clients/web-frontend/secrets/db-password", nil)
			_, _ = http.DefaultClient.Do(r)
		}
	})
}
