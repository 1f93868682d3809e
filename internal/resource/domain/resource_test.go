package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListFilter_SearchPattern(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"", ""},
		{"Calculus", "%calculus%"},
		{"100%", `%100\%%`},
		{"lab_1", `%lab\_1%`},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, ListFilter{Query: tt.query}.SearchPattern())
		})
	}
}
