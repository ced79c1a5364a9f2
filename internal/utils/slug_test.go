package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Hello World", want: "hello-world"},
		{in: "Đặc sản Hà Nội", want: "dac-san-ha-noi"},
		{in: "Phở bò tái", want: "pho-bo-tai"},
		{in: "Bánh mì   thịt\tnướng", want: "banh-mi-thit-nuong"},
		{in: "  leading spaces", want: "leading-spaces"},
		{in: "--dashes-first", want: "dashes-first"},
		{in: "trailing space ", want: "trailing-space-"},
		{in: "a ! b", want: "a-b"},
		{in: "Price: 100$", want: "price-100"},
		{in: "already-a-slug", want: "already-a-slug"},
		{in: "ỲÝỴỶỸ", want: "yyyyy"},
		{in: "!!!", want: ""},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	for _, in := range []string{"Đặc sản Hà Nội", "a  b  c", "x-y z"} {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once))
	}
}
