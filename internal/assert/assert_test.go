package assert_test

import (
	"testing"

	"github.com/teleivo/assertive/require"
	"github.com/teleivo/emit/internal/assert"
)

func TestThat(t *testing.T) {
	t.Run("Holds", func(t *testing.T) {
		assert.That(true, "op", "never shown %d", 1)
	})

	tests := map[string]struct {
		msg  string
		args []any
		want string
	}{
		"Message":          {msg: "broken", want: "op: broken"},
		"FormattedMessage": {msg: "got %d, want %d", args: []any{1, 2}, want: "op: got 1, want 2"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				err := recover()
				v, ok := err.(assert.Violation)
				require.Truef(t, ok, "want panic of type Violation, got %T: %v", err, err)
				require.EqualValuesf(t, v.Error(), tt.want, "Violation.Error")
			}()
			assert.That(false, "op", tt.msg, tt.args...)
		})
	}
}
