package bincode

import "testing"

var benchProfile = &profile{
	ID:    123456789,
	Name:  "benchmark-profile",
	Admin: true,
	Score: 3.14159,
	Tags:  []string{"one", "two", "three"},
	Attrs: map[string]uint32{"a": 1, "b": 2, "c": 3},
}

func BenchmarkMarshalVarint(b *testing.B) {
	cfg := Standard()
	for i := 0; i < b.N; i++ {
		if _, err := Marshal(benchProfile, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMarshalFixed(b *testing.B) {
	cfg := Legacy()
	for i := 0; i < b.N; i++ {
		if _, err := Marshal(benchProfile, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnmarshalVarint(b *testing.B) {
	cfg := Standard()
	data, err := Marshal(benchProfile, cfg)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var p profile
		if _, err := Unmarshal(&p, data, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeBuffered(b *testing.B) {
	cfg := Standard()
	var w SizeWriter
	for i := 0; i < b.N; i++ {
		if _, err := EncodeBuffered(benchProfile, &w, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeU64Varint(b *testing.B) {
	e := NewEncoder(&SizeWriter{}, Standard())
	for i := 0; i < b.N; i++ {
		if err := e.EncodeU64(uint64(i)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeU64Fixed(b *testing.B) {
	e := NewEncoder(&SizeWriter{}, Legacy())
	for i := 0; i < b.N; i++ {
		if err := e.EncodeU64(uint64(i)); err != nil {
			b.Fatal(err)
		}
	}
}
