package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldKind_String(t *testing.T) {
	tests := []struct {
		kind FieldKind
		want string
	}{
		{KindUint, "uint"},
		{KindInt, "int"},
		{KindFloat32, "float"},
		{KindText, "ascii"},
		{FieldKind(0), "Unknown(0)"},
		{FieldKind(9), "Unknown(9)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestFieldKind_IsValid(t *testing.T) {
	require.False(t, FieldKind(0).IsValid())
	require.True(t, KindUint.IsValid())
	require.True(t, KindInt.IsValid())
	require.True(t, KindFloat32.IsValid())
	require.True(t, KindText.IsValid())
	require.False(t, FieldKind(5).IsValid())
}

func TestFieldKind_IsInteger(t *testing.T) {
	require.True(t, KindUint.IsInteger())
	require.True(t, KindInt.IsInteger())
	require.False(t, KindFloat32.IsInteger())
	require.False(t, KindText.IsInteger())
}

func TestParseFieldKind(t *testing.T) {
	tests := []struct {
		name string
		want FieldKind
		ok   bool
	}{
		{"uint", KindUint, true},
		{"INT", KindInt, true},
		{"float", KindFloat32, true},
		{"float32", KindFloat32, true},
		{" ascii ", KindText, true},
		{"text", KindText, true},
		{"double", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := ParseFieldKind(tt.name)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, kind)
		})
	}
}
