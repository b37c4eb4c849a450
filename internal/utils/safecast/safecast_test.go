package safecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_StringToBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		want    bool
		wantErr string
	}{
		{name: "empty", give: "", want: false},
		{name: "true", give: "true", want: true},
		{name: "one", give: "1", want: true},
		{name: "false with spaces", give: " false ", want: false},
		{name: "invalid", give: "yes please", wantErr: "value \"yes please\" is not a boolean"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := StringToBool(tt.give)

			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
