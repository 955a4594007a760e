package maputil

import (
	"testing"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Status  string        `json:"status"`
	Version string        `json:"version"`
	Timeout time.Duration `json:"timeout"`
	Tags    []string      `json:"tags"`
}

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   any
		want    *sample
		wantErr bool
	}{
		{
			name:  "기본 디코딩",
			input: map[string]any{"status": "healthy", "version": "0.1.0"},
			want:  &sample{Status: "healthy", Version: "0.1.0"},
		},
		{
			name:  "약한 타입 변환 (숫자 -> 문자열)",
			input: map[string]any{"status": "ok", "version": float64(2)},
			want:  &sample{Status: "ok", Version: "2"},
		},
		{
			name:  "Duration 및 슬라이스 훅",
			input: map[string]any{"timeout": "1m30s", "tags": "a, b ,c"},
			want:  &sample{Timeout: 90 * time.Second, Tags: []string{"a", "b", "c"}},
		},
		{
			name:  "알 수 없는 키 무시",
			input: map[string]any{"status": "ok", "uptime": 12},
			want:  &sample{Status: "ok"},
		},
		{
			name:    "변환 불가능한 타입",
			input:   map[string]any{"status": map[string]any{"nested": true}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Decode[sample](tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "디코딩하는 데 실패했습니다")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_Options(t *testing.T) {
	t.Parallel()

	t.Run("ErrorUnused", func(t *testing.T) {
		_, err := Decode[sample](map[string]any{"unknown": 1}, WithErrorUnused(true))
		assert.Error(t, err)
	})

	t.Run("엄격한 타입", func(t *testing.T) {
		_, err := Decode[sample](map[string]any{"version": 2}, WithWeaklyTypedInput(false))
		assert.Error(t, err)
	})

	t.Run("Metadata", func(t *testing.T) {
		var md mapstructure.Metadata
		_, err := Decode[sample](map[string]any{"status": "ok", "extra": true}, WithMetadata(&md))
		require.NoError(t, err)
		assert.Contains(t, md.Keys, "status")
		assert.Contains(t, md.Unused, "extra")
	})

	t.Run("공백 유지", func(t *testing.T) {
		got, err := Decode[sample](map[string]any{"tags": " a , b"}, WithTrimSpace(false))
		require.NoError(t, err)
		assert.Equal(t, []string{" a ", " b"}, got.Tags)
	})
}

func TestDecodeTo_NilOutput(t *testing.T) {
	t.Parallel()

	var out *sample
	assert.Error(t, DecodeTo(map[string]any{}, out))
}
