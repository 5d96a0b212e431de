package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStakerAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr bool
	}{
		{
			name:    "valid",
			address: "0x3f5ce5fbfe3e9af3971dd833d26ba9b5c936f0be",
		},
		{
			name:    "missing prefix",
			address: "3f5ce5fbfe3e9af3971dd833d26ba9b5c936f0be",
			wantErr: true,
		},
		{
			name:    "too short",
			address: "0x3f5ce5fb",
			wantErr: true,
		},
		{
			name:    "uppercase hex",
			address: "0x3F5CE5FBFE3E9AF3971DD833D26BA9B5C936F0BE",
			wantErr: true,
		},
		{
			name:    "not hex",
			address: "0x3f5ce5fbfe3e9af3971dd833d26ba9b5c936f0zz",
			wantErr: true,
		},
		{
			name:    "empty",
			address: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStakerAddress(tt.address)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
