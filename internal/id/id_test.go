package id

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Uniqueness(t *testing.T) {
	ids := make(map[string]bool)
	count := 1000

	for i := 0; i < count; i++ {
		id, err := Generate(PrefixShelf)
		require.NoError(t, err)
		assert.False(t, ids[id], "ID should be unique: %s", id)
		ids[id] = true
	}

	assert.Len(t, ids, count)
}

func TestGenerate_Format(t *testing.T) {
	for _, prefix := range []string{PrefixUser, PrefixBook, PrefixShelf} {
		t.Run(prefix, func(t *testing.T) {
			id, err := Generate(prefix)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(id, prefix+"-"))
			assert.Len(t, id, len(prefix)+1+21, "ID: %s", id)
			assert.True(t, Valid(prefix, id))
		})
	}
}

func TestValid(t *testing.T) {
	good := MustGenerate(PrefixBook)

	tests := []struct {
		name   string
		prefix string
		value  string
		want   bool
	}{
		{"generated", PrefixBook, good, true},
		{"wrong prefix", PrefixShelf, good, false},
		{"empty", PrefixBook, "", false},
		{"numeric", PrefixBook, "42", false},
		{"prefix only", PrefixBook, "book-", false},
		{"too short", PrefixBook, "book-abc", false},
		{"bad characters", PrefixBook, "book-" + strings.Repeat("!", 21), false},
		{"dash inside nanoid", PrefixBook, "book-" + strings.Repeat("a-", 10) + "b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Valid(tt.prefix, tt.value))
		})
	}
}

func TestNewRowID_IsUUID(t *testing.T) {
	a := NewRowID()
	b := NewRowID()

	_, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestMustGenerate_Format(t *testing.T) {
	id := MustGenerate("test")

	assert.True(t, strings.HasPrefix(id, "test-"))
	assert.Equal(t, len("test")+1+21, len(id))
}

func BenchmarkGenerate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Generate("bench")
	}
}
