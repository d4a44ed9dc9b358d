package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/gostdlib/base/context"
	"github.com/kylelemons/godebug/pretty"

	"github.com/bearlytools/scalar"
	"github.com/bearlytools/scalar/errors"
)

func TestRunJSON(t *testing.T) {
	ctx := context.Background()
	out := &bytes.Buffer{}

	if err := run(ctx, []string{"-json", "u32", "i16"}, out, &bytes.Buffer{}); err != nil {
		t.Fatalf("TestRunJSON: got err == %s", err)
	}

	var got report
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("TestRunJSON: output was not valid JSON: %s", err)
	}

	want := report{
		DoublePrecision: scalar.DoublePrecision,
		Real:            scalar.RealKind().GoType(),
		RealBits:        scalar.RealBitsKind().GoType(),
		Kinds: []row{
			{Name: "u32", GoType: "uint32", Bytes: 4, Capabilities: []string{"U32Type", "Unsigned", "Integral", "Arithmetic"}},
			{Name: "i16", GoType: "int16", Bytes: 2, Capabilities: []string{"Signed", "Integral", "Arithmetic"}},
		},
	}
	if diff := pretty.Compare(want, got); diff != "" {
		t.Errorf("TestRunJSON: -want/+got:\n%s", diff)
	}
}

func TestRunTable(t *testing.T) {
	ctx := context.Background()
	out := &bytes.Buffer{}

	if err := run(ctx, nil, out, &bytes.Buffer{}); err != nil {
		t.Fatalf("TestRunTable: got err == %s", err)
	}

	s := out.String()
	header := "Real=" + scalar.RealKind().GoType()
	if !strings.HasPrefix(s, header) {
		t.Errorf("TestRunTable: output did not start with %q:\n%s", header, s)
	}
	for _, k := range scalar.Kinds() {
		if !strings.Contains(s, k.GoType()) {
			t.Errorf("TestRunTable: output is missing %s:\n%s", k, s)
		}
	}
}

func TestRunFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	good := filepath.Join(dir, "good.list")
	if err := os.WriteFile(good, []byte("types {\n\tf64 bool\n}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.list")
	if err := os.WriteFile(bad, []byte("types {\n\tf65\n}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr bool
	}{
		{name: "Success: file", args: []string{"-json", "-f", good}, want: []string{"f64", "bool"}},
		{name: "Success: file and names", args: []string{"-json", "-f", good, "u8"}, want: []string{"f64", "bool", "u8"}},
		{name: "Error: bad file", args: []string{"-f", bad}, wantErr: true},
		{name: "Error: missing file", args: []string{"-f", filepath.Join(dir, "missing.list")}, wantErr: true},
		{name: "Error: unknown name", args: []string{"i128"}, wantErr: true},
		{name: "Error: unknown flag", args: []string{"-nope"}, wantErr: true},
	}

	for _, test := range tests {
		out := &bytes.Buffer{}
		err := run(ctx, test.args, out, &bytes.Buffer{})
		switch {
		case err == nil && test.wantErr:
			t.Errorf("TestRunFile(%s): got err == nil, want err != nil", test.name)
			continue
		case err != nil && !test.wantErr:
			t.Errorf("TestRunFile(%s): got err == %s, want err == nil", test.name, err)
			continue
		case err != nil:
			continue
		}

		var got report
		if err := json.Unmarshal(out.Bytes(), &got); err != nil {
			t.Fatalf("TestRunFile(%s): output was not valid JSON: %s", test.name, err)
		}
		var names []string
		for _, r := range got.Kinds {
			names = append(names, r.Name)
		}
		if diff := pretty.Compare(test.want, names); diff != "" {
			t.Errorf("TestRunFile(%s): -want/+got:\n%s", test.name, diff)
		}
	}
}

func TestRunErrorKinds(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.list")
	if err := os.WriteFile(bad, []byte("kinds {\n\ti8\n}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		args     []string
		wantType errors.Type
	}{
		{name: "missing file", args: []string{"-f", filepath.Join(dir, "missing.list")}, wantType: errors.TypeFS},
		{name: "unparsable file", args: []string{"-f", bad}, wantType: errors.TypeParse},
		{name: "unknown name", args: []string{"i128"}, wantType: errors.TypeParameter},
	}

	for _, test := range tests {
		err := run(ctx, test.args, &bytes.Buffer{}, &bytes.Buffer{})
		if err == nil {
			t.Errorf("TestRunErrorKinds(%s): got err == nil, want err != nil", test.name)
			continue
		}
		var e errors.Error
		if !errors.As(err, &e) {
			t.Errorf("TestRunErrorKinds(%s): error %q is not an errors.Error", test.name, err)
			continue
		}
		if e.Category != errors.CatUser {
			t.Errorf("TestRunErrorKinds(%s): got Category %v, want %v", test.name, e.Category, errors.CatUser)
		}
		if e.Type != test.wantType {
			t.Errorf("TestRunErrorKinds(%s): got Type %v, want %v", test.name, e.Type, test.wantType)
		}
	}
}

func TestRunHelp(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	if err := run(context.Background(), []string{"-h"}, out, errOut); err != nil {
		t.Fatalf("TestRunHelp: got err == %s, want nil", err)
	}
	if out.Len() != 0 {
		t.Errorf("TestRunHelp: wrote %q to stdout, want nothing", out.String())
	}
	for _, want := range []string{"Usage: scalarinfo", "-f", "-json"} {
		if !strings.Contains(errOut.String(), want) {
			t.Errorf("TestRunHelp: usage is missing %q:\n%s", want, errOut.String())
		}
	}
}
