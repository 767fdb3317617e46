package directive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehdilight/retrofit-go/pkg/retrofit"
)

func parseDirective(t *testing.T, comment string) *ParsedDirective {
	t.Helper()

	parsed, err := NewDefaultParser().Parse(comment, retrofit.SourceLocation{})
	require.NoError(t, err, "Parse(%q)", comment)
	return parsed
}

func TestParser_Route(t *testing.T) {
	parsed := parseDirective(t, "//retrofit::route GET /users/{id:int}")

	assert.Equal(t, RouteDirective, parsed.Type)
	assert.Equal(t, "GET", parsed.GetString("method"))
	assert.Equal(t, "/users/{id:int}", parsed.GetString("path"))
}

func TestParser_RouteWithoutPath(t *testing.T) {
	parsed := parseDirective(t, "//retrofit::route HEAD")

	assert.Equal(t, "HEAD", parsed.GetString("method"))
	assert.False(t, parsed.HasParameter("path"))
}

func TestParser_RouteLowercaseMethod(t *testing.T) {
	// The schema validator upper-cases before checking the verb
	parsed := parseDirective(t, "//retrofit::route get /users")
	assert.Equal(t, "get", parsed.GetString("method"))
}

func TestParser_Param(t *testing.T) {
	tests := []struct {
		comment string
		kind    string
		name    string
	}{
		{"//retrofit::param path id", "path", "id"},
		{"//retrofit::param query sort", "query", "sort"},
		{"//retrofit::param header Authorization", "header", "Authorization"},
		{"//retrofit::param field username", "field", "username"},
		{"//retrofit::param part avatar", "part", "avatar"},
		{"//retrofit::param body", "body", ""},
		{"//retrofit::param url", "url", ""},
	}

	for _, tt := range tests {
		t.Run(tt.comment, func(t *testing.T) {
			parsed := parseDirective(t, tt.comment)
			assert.Equal(t, ParamDirective, parsed.Type)
			assert.Equal(t, tt.kind, parsed.GetString("kind"))
			assert.Equal(t, tt.name, parsed.GetString("name"))
		})
	}
}

func TestParser_VerbKeywordSpellings(t *testing.T) {
	tests := []struct {
		comment string
		method  string
		path    string
	}{
		{"//retrofit::get /users/{id}", "GET", "/users/{id}"},
		{"//retrofit::head /users", "HEAD", "/users"},
		{"//retrofit::options /users", "OPTIONS", "/users"},
		{"//retrofit::put /users/{id}", "PUT", "/users/{id}"},
		{"//retrofit::post /users", "POST", "/users"},
		{"//retrofit::delete /users/{id}", "DELETE", "/users/{id}"},
		{"//retrofit::patch /users/{id}", "PATCH", "/users/{id}"},
		{"//retrofit::head", "HEAD", ""},
	}

	for _, tt := range tests {
		t.Run(tt.comment, func(t *testing.T) {
			parsed := parseDirective(t, tt.comment)
			assert.Equal(t, RouteDirective, parsed.Type)
			assert.Equal(t, tt.method, parsed.GetString("method"))
			assert.Equal(t, tt.path, parsed.GetString("path"))
		})
	}
}

func TestParser_SlotKeywordSpellings(t *testing.T) {
	tests := []struct {
		comment string
		kind    string
		name    string
	}{
		{"//retrofit::path id", "path", "id"},
		{"//retrofit::query sort", "query", "sort"},
		{"//retrofit::header Authorization", "header", "Authorization"},
		{"//retrofit::field username", "field", "username"},
		{"//retrofit::part avatar", "part", "avatar"},
		{"//retrofit::body", "body", ""},
		{"//retrofit::url", "url", ""},
	}

	for _, tt := range tests {
		t.Run(tt.comment, func(t *testing.T) {
			parsed := parseDirective(t, tt.comment)
			assert.Equal(t, ParamDirective, parsed.Type)
			assert.Equal(t, tt.kind, parsed.GetString("kind"))
			assert.Equal(t, tt.name, parsed.GetString("name"))
		})
	}
}

func TestParser_Headers(t *testing.T) {
	parsed := parseDirective(t, `//retrofit::headers "Cache-Control: max-age=640000" "Accept: application/json"`)

	assert.Equal(t, HeadersDirective, parsed.Type)
	assert.Equal(t, []string{
		"Cache-Control: max-age=640000",
		"Accept: application/json",
	}, parsed.GetStringSlice("lines"))
}

func TestParser_Encoding(t *testing.T) {
	for _, encoding := range []string{"form", "multipart"} {
		parsed := parseDirective(t, "//retrofit::encoding "+encoding)
		assert.Equal(t, EncodingDirective, parsed.Type)
		assert.Equal(t, encoding, parsed.GetString("encoding"))
	}
}

func TestParser_Serialized(t *testing.T) {
	parsed := parseDirective(t, "//retrofit::serialized user_id")

	assert.Equal(t, SerializedDirective, parsed.Type)
	assert.Equal(t, "user_id", parsed.GetString("name"))
}

func TestParser_SerializedWithNamedParameters(t *testing.T) {
	parsed := parseDirective(t, "//retrofit::serialized created_at -Model=User -Field=CreatedAt")

	assert.Equal(t, "created_at", parsed.GetString("name"))
	assert.Equal(t, "User", parsed.GetString("Model"))
	assert.Equal(t, "CreatedAt", parsed.GetString("Field"))
}

func TestParser_QuotedNamedParameter(t *testing.T) {
	parsed := parseDirective(t, `//retrofit::serialized x -Model="User Profile"`)
	assert.Equal(t, "User Profile", parsed.GetString("Model"))
}

func TestParser_LocationAndRaw(t *testing.T) {
	location := retrofit.SourceLocation{File: "api.yaml", Line: 7, Column: 2}
	comment := "//retrofit::route GET /users"

	parsed, err := NewDefaultParser().Parse(comment, location)
	require.NoError(t, err)

	assert.Equal(t, location, parsed.Location)
	assert.Equal(t, comment, parsed.Raw)
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name     string
		comment  string
		contains string
	}{
		{"missing comment prefix", "retrofit::route GET /x", "must start with '//'"},
		{"missing retrofit prefix", "// go:generate mockgen", "retrofit::"},
		{"empty directive", "//retrofit::", "empty directive"},
		{"unknown type", "//retrofit::inject GET /x", "invalid directive type"},
		{"route without method", "//retrofit::route", "requires a method"},
		{"route bad method", "//retrofit::route FETCH /x", "must be one of"},
		{"route relative path", "//retrofit::route GET users", "must start with '/'"},
		{"route malformed template", "//retrofit::route GET /users/{id", "brace"},
		{"param without name", "//retrofit::param field", "require a name"},
		{"param body with name", "//retrofit::param body payload", "do not take a name"},
		{"param bad kind", "//retrofit::param cookie session", "must be one of"},
		{"encoding bad value", "//retrofit::encoding json", "must be 'form' or 'multipart'"},
		{"verb keyword relative path", "//retrofit::get users", "must start with '/'"},
		{"slot keyword body with name", "//retrofit::body payload", "do not take a name"},
		{"slot keyword without name", "//retrofit::field", "require a name"},
		{"headers without lines", "//retrofit::headers", "missing required parameter"},
		{"unknown named parameter", "//retrofit::serialized x -Bogus=1", "unknown parameter"},
	}

	parser := NewDefaultParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.comment, retrofit.SourceLocation{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestParser_NilRegistrySkipsValidation(t *testing.T) {
	parser := NewParser(nil)

	// Without a registry the route directive is not checked for a method
	parsed, err := parser.Parse("//retrofit::route", retrofit.SourceLocation{})
	require.NoError(t, err)
	assert.Equal(t, RouteDirective, parsed.Type)
}

func TestSplitFields(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"a b c", []string{"a", "b", "c"}},
		{`"a b" c`, []string{`"a b"`, "c"}},
		{"a\t b", []string{"a", "b"}},
		{`'x y'`, []string{`'x y'`}},
		{"", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, splitFields(tt.input), "splitFields(%q)", tt.input)
	}
}

func TestUnquote(t *testing.T) {
	assert.Equal(t, "a b", unquote(`"a b"`))
	assert.Equal(t, "a", unquote(`'a'`))
	assert.Equal(t, "plain", unquote("plain"))
	assert.Equal(t, `"`, unquote(`"`))
}
