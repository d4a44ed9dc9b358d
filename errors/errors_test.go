package errors

import (
	"fmt"
	"testing"

	"github.com/gostdlib/base/context"
)

func TestStrings(t *testing.T) {
	tests := []struct {
		desc string
		got  string
		want string
	}{
		{desc: "CatUser", got: CatUser.Category(), want: "User"},
		{desc: "CatUnknown", got: CatUnknown.Category(), want: "Unknown"},
		{desc: "undefined Category", got: Category(7).Category(), want: "Category(7)"},
		{desc: "TypeParse", got: TypeParse.Type(), want: "Parse"},
		{desc: "TypeFS", got: TypeFS.Type(), want: "FS"},
		{desc: "TypeParameter", got: TypeParameter.Type(), want: "Parameter"},
		{desc: "TypeUnknown", got: TypeUnknown.Type(), want: "Unknown"},
		{desc: "undefined Type", got: Type(999).Type(), want: "Type(999)"},
	}

	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("TestStrings(%s): got %q, want %q", test.desc, test.got, test.want)
		}
	}
}

func TestE(t *testing.T) {
	base := New("base")
	err := fmt.Errorf("outer: %w", E(context.Background(), CatUser, TypeFS, base))

	var e Error
	if !As(err, &e) {
		t.Fatalf("TestE: As() could not find an Error in %v", err)
	}
	if e.Category != CatUser {
		t.Errorf("TestE: got Category %v, want %v", e.Category, CatUser)
	}
	if e.Type != TypeFS {
		t.Errorf("TestE: got Type %v, want %v", e.Type, TypeFS)
	}
	if !Is(err, base) {
		t.Errorf("TestE: Is(err, base) = false, want true")
	}
}
