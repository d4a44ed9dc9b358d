package conversions

import "testing"

func TestByteSlice2String(t *testing.T) {
	tests := []struct {
		desc string
		in   []byte
		want string
	}{
		{desc: "nil", in: nil, want: ""},
		{desc: "empty", in: []byte{}, want: ""},
		{desc: "content", in: []byte("types {\n\ti32\n}\n"), want: "types {\n\ti32\n}\n"},
	}

	for _, test := range tests {
		if got := ByteSlice2String(test.in); got != test.want {
			t.Errorf("TestByteSlice2String(%s): got %q, want %q", test.desc, got, test.want)
		}
	}
}
