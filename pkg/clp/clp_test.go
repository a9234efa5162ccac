package clp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swagchile/catalogo-api/pkg/clp"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "$0"},
		{990, "$990"},
		{1500, "$1.500"},
		{13500, "$13.500"},
		{1190000, "$1.190.000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clp.Format(tt.amount),
			"formato es-CL para %d", tt.amount)
	}
}
