package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "props error",
			code:    CodeInvalidProp,
			wantMsg: "Invalid prop value",
			wantCat: CategoryProps,
		},
		{
			name:    "config error",
			code:    CodeConfigParse,
			wantMsg: "Invalid config file",
			wantCat: CategoryConfig,
		},
		{
			name:    "snapshot error",
			code:    CodeSnapshotMismatch,
			wantMsg: "Snapshot mismatch",
			wantCat: CategorySnapshot,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "unknown flag %q", "--sizes")
	if err.Message != `unknown flag "--sizes"` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Category != CategoryCLI {
		t.Errorf("Category = %q, want %q", err.Category, CategoryCLI)
	}
}

func TestOxdError_Error(t *testing.T) {
	err := New("E001")
	if got, want := err.Error(), "E001: Invalid prop value"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	wrapped := New(CodeConfigParse).Wrap(fmt.Errorf("unexpected end of JSON input"))
	if got, want := wrapped.Error(), "E101: Invalid config file: unexpected end of JSON input"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	plain := &OxdError{Message: "test error"}
	if plain.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", plain.Error(), "test error")
	}
}

func TestOxdError_WithLocation(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "button.yaml")
	content := `component: button
stories:
  - name: Main
    args:
      type: mian
      label: Button
`
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	err := New(CodeStoryArgs).WithLocation(tmpFile, 5, 13)
	if err.Location == nil {
		t.Fatal("Location is nil")
	}
	if err.Location.Line != 5 || err.Location.Column != 13 {
		t.Errorf("Location = %v", err.Location)
	}
	// Lines 3 through 6; the file ends before line 7.
	if len(err.Context) != 4 {
		t.Fatalf("Context has %d lines, want 4", len(err.Context))
	}
	if !strings.Contains(err.Context[2], "type: mian") {
		t.Errorf("Context[2] = %q, want the located line", err.Context[2])
	}
}

func TestOxdError_Builders(t *testing.T) {
	err := New(CodeSnapshotMismatch).
		WithDetailf("%d of %d cases differ", 2, 17).
		WithSuggestion("Run 'oxd snapshot --update'")

	if err.Detail != "2 of 17 cases differ" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if err.Suggestion != "Run 'oxd snapshot --update'" {
		t.Errorf("Suggestion = %q", err.Suggestion)
	}
}

func TestOxdError_Wrap(t *testing.T) {
	inner := New("E002")
	outer := New("E001").Wrap(inner)

	if outer.Wrapped != inner {
		t.Error("Wrapped error mismatch")
	}
	if !stderrors.Is(outer, inner) {
		t.Error("errors.Is should find the wrapped error")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E001") != nil {
		t.Error("FromError(nil, ...) should return nil")
	}

	oe := New("E001")
	if FromError(oe, "E002") != oe {
		t.Error("FromError should return OxdError as-is")
	}

	chained := fmt.Errorf("loading: %w", oe)
	if FromError(chained, "E002") != oe {
		t.Error("FromError should find an OxdError in the chain")
	}

	stdErr := &testError{msg: "test error"}
	result := FromError(stdErr, "E132")
	if result.Wrapped != stdErr {
		t.Error("Standard error should be wrapped")
	}
	if result.Code != "E132" {
		t.Errorf("Code = %q, want E132", result.Code)
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(fmt.Errorf("x: %w", New(CodePublish))); got != CodePublish {
		t.Errorf("CodeOf = %q, want %q", got, CodePublish)
	}
	if got := CodeOf(&testError{msg: "x"}); got != "" {
		t.Errorf("CodeOf = %q, want empty", got)
	}
}

type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}

func TestLocation_String(t *testing.T) {
	tests := []struct {
		name string
		loc  *Location
		want string
	}{
		{name: "nil location", loc: nil, want: ""},
		{name: "with column", loc: &Location{File: "oxd.json", Line: 10, Column: 5}, want: "oxd.json:10:5"},
		{name: "without column", loc: &Location{File: "oxd.json", Line: 10}, want: "oxd.json:10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	tmpFile := filepath.Join(t.TempDir(), "oxd.json")
	content := "{\n  \"docs\": {\n    \"port\": -1\n  }\n}\n"
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	err := New(CodeConfigInvalid).
		WithLocation(tmpFile, 3, 13).
		WithSuggestion("Use a port between 1 and 65535").
		Wrap(fmt.Errorf("docs.port: must be >= 1"))

	formatted := err.Format()

	for _, want := range []string{
		"ERROR E102: Invalid config value",
		tmpFile + ":3:13",
		"→    3 │     \"port\": -1",
		"Cause: docs.port: must be >= 1",
		"Hint: Use a port between 1 and 65535",
		"Learn more: " + docBase + "E102",
	} {
		if !strings.Contains(formatted, want) {
			t.Errorf("Format() missing %q in:\n%s", want, formatted)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	err := New(CodeStoryParse).WithLocation("stories/button.yaml", 10, 5)
	want := "stories/button.yaml:10:5: E140: Invalid story file"
	if got := err.FormatCompact(); got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New(CodeStoryNotFound).
		WithLocation("stories.yaml", 4, 0).
		Wrap(fmt.Errorf("button--mian"))

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatal(jerr)
	}
	var got map[string]any
	if jerr := json.Unmarshal(data, &got); jerr != nil {
		t.Fatal(jerr)
	}
	if got["code"] != "E141" {
		t.Errorf("code = %v", got["code"])
	}
	if got["category"] != "story" {
		t.Errorf("category = %v", got["category"])
	}
	if got["cause"] != "button--mian" {
		t.Errorf("cause = %v", got["cause"])
	}
	loc, ok := got["location"].(map[string]any)
	if !ok || loc["file"] != "stories.yaml" {
		t.Errorf("location = %v", got["location"])
	}
}

func TestRegistryCodes(t *testing.T) {
	codes := GetAllCodes()
	if len(codes) == 0 {
		t.Fatal("GetAllCodes() should return codes")
	}
	for _, code := range codes {
		tmpl, _ := GetTemplate(code)
		if tmpl.Message == "" || tmpl.Category == "" {
			t.Errorf("%s: incomplete template %+v", code, tmpl)
		}
		if tmpl.DocURL != docBase+code {
			t.Errorf("%s: DocURL = %q", code, tmpl.DocURL)
		}
	}

	if _, ok := GetTemplate("E999"); ok {
		t.Error("E999 should not exist")
	}
}

func TestRegister(t *testing.T) {
	Register("E999", ErrorTemplate{
		Category: CategoryCLI,
		Message:  "Custom test error",
	})
	defer delete(registry, "E999")

	if err := New("E999"); err.Message != "Custom test error" {
		t.Errorf("Message = %q, want %q", err.Message, "Custom test error")
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("short text", 100)
	if len(got) != 1 || got[0] != "short text" {
		t.Errorf("wrapText short text: got %v", got)
	}

	got = wrapText("this is a longer text that should be wrapped", 20)
	if len(got) != 3 {
		t.Errorf("wrapText long text: expected 3 lines, got %d: %v", len(got), got)
	}

	if got = wrapText("", 10); len(got) != 0 {
		t.Errorf("wrapText empty: expected empty, got %v", got)
	}
}

func TestPaintDisabled(t *testing.T) {
	DisableColors()
	defer EnableColors()

	if got := paint(errorStyle, "ERROR"); got != "ERROR" {
		t.Errorf("paint with colors disabled = %q", got)
	}
}

func TestPrint(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var b strings.Builder
	Print(&b, fmt.Errorf("wrapped: %w", New(CodeExport)))
	if !strings.Contains(b.String(), "ERROR E152: Export failed") {
		t.Errorf("Print() = %q", b.String())
	}

	b.Reset()
	Print(&b, &testError{msg: "plain failure"})
	if !strings.Contains(b.String(), "ERROR: plain failure") {
		t.Errorf("Print() = %q", b.String())
	}
}
