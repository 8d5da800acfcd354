package uuid_test

import (
	"testing"

	"github.com/jvs-project/uuidgen/pkg/uuid"
)

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := uuid.New(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkString(b *testing.B) {
	u := uuid.Must(uuid.New())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = u.String()
	}
}

func BenchmarkParse(b *testing.B) {
	s := uuid.Must(uuid.New()).String()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := uuid.Parse(s); err != nil {
			b.Fatal(err)
		}
	}
}
