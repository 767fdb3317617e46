package openapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehdilight/retrofit-go/pkg/retrofit"
)

func exportUserService(t *testing.T) *retrofit.Service {
	t.Helper()

	service, err := retrofit.NewService("UserService").
		BasePath("/api/v1").
		AddMethod(retrofit.MethodSpec{
			Name:   "GetUser",
			Call:   retrofit.GET("/users/{id:int}"),
			Params: []retrofit.Param{retrofit.PathOf("id")},
		}).
		AddMethod(retrofit.MethodSpec{
			Name:   "ListUsers",
			Call:   retrofit.GET("/users"),
			Params: []retrofit.Param{retrofit.Query("sort"), retrofit.Header("X-Trace")},
		}).
		AddMethod(retrofit.MethodSpec{
			Name:   "CreateUser",
			Call:   retrofit.POST("/users"),
			Params: []retrofit.Param{retrofit.Body()},
		}).
		AddMethod(retrofit.MethodSpec{
			Name:     "UpdateAvatar",
			Call:     retrofit.PUT("/users/{id:uuid}/avatar"),
			Params:   []retrofit.Param{retrofit.PathOf("id"), retrofit.Part("avatar")},
			Encoding: retrofit.Multipart,
		}).
		Build()
	require.NoError(t, err)

	return service
}

func TestExport_Document(t *testing.T) {
	doc := Export("User API", "1.2.0", exportUserService(t))

	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Equal(t, "User API", doc.Info.Title)
	assert.Equal(t, "1.2.0", doc.Info.Version)
	assert.Equal(t, 3, doc.Paths.Len())
}

func TestExport_PathsAndOperations(t *testing.T) {
	doc := Export("User API", "1.0.0", exportUserService(t))

	// Typed placeholders render in plain {name} form
	item := doc.Paths.Value("/api/v1/users/{id}")
	require.NotNil(t, item)
	require.NotNil(t, item.Get)
	assert.Equal(t, "UserService.GetUser", item.Get.OperationID)
	assert.Equal(t, []string{"UserService"}, item.Get.Tags)
	require.NotNil(t, item.Get.Responses)

	// GET and POST on the same path share one path item
	users := doc.Paths.Value("/api/v1/users")
	require.NotNil(t, users)
	require.NotNil(t, users.Get)
	require.NotNil(t, users.Post)
	assert.Equal(t, "UserService.ListUsers", users.Get.OperationID)
	assert.Equal(t, "UserService.CreateUser", users.Post.OperationID)

	avatar := doc.Paths.Value("/api/v1/users/{id}/avatar")
	require.NotNil(t, avatar)
	require.NotNil(t, avatar.Put)
}

func TestExport_PathParameterSchemas(t *testing.T) {
	doc := Export("User API", "1.0.0", exportUserService(t))

	getUser := doc.Paths.Value("/api/v1/users/{id}").Get
	require.Len(t, getUser.Parameters, 1)

	param := getUser.Parameters[0].Value
	assert.Equal(t, "id", param.Name)
	assert.Equal(t, "path", param.In)
	assert.True(t, param.Schema.Value.Type.Is("integer"))

	avatar := doc.Paths.Value("/api/v1/users/{id}/avatar").Put
	uuidParam := avatar.Parameters[0].Value
	assert.True(t, uuidParam.Schema.Value.Type.Is("string"))
	assert.Equal(t, "uuid", uuidParam.Schema.Value.Format)
}

func TestExport_QueryAndHeaderParameters(t *testing.T) {
	doc := Export("User API", "1.0.0", exportUserService(t))

	listUsers := doc.Paths.Value("/api/v1/users").Get
	require.Len(t, listUsers.Parameters, 2)

	assert.Equal(t, "sort", listUsers.Parameters[0].Value.Name)
	assert.Equal(t, "query", listUsers.Parameters[0].Value.In)
	assert.Equal(t, "X-Trace", listUsers.Parameters[1].Value.Name)
	assert.Equal(t, "header", listUsers.Parameters[1].Value.In)
}

func TestExport_RequestBodies(t *testing.T) {
	doc := Export("User API", "1.0.0", exportUserService(t))

	createUser := doc.Paths.Value("/api/v1/users").Post
	require.NotNil(t, createUser.RequestBody)
	assert.Contains(t, createUser.RequestBody.Value.Content, "application/json")

	avatar := doc.Paths.Value("/api/v1/users/{id}/avatar").Put
	require.NotNil(t, avatar.RequestBody)
	content := avatar.RequestBody.Value.Content
	require.Contains(t, content, "multipart/form-data")
	assert.Contains(t, content["multipart/form-data"].Schema.Value.Properties, "avatar")

	getUser := doc.Paths.Value("/api/v1/users/{id}").Get
	assert.Nil(t, getUser.RequestBody)
}

func TestExport_FormEncodedBody(t *testing.T) {
	service, err := retrofit.NewService("AuthService").
		AddMethod(retrofit.MethodSpec{
			Name:     "Login",
			Call:     retrofit.POST("/login"),
			Params:   []retrofit.Param{retrofit.Field("username"), retrofit.Field("password")},
			Encoding: retrofit.FormURLEncoded,
		}).
		Build()
	require.NoError(t, err)

	doc := Export("Auth API", "1.0.0", service)

	login := doc.Paths.Value("/login").Post
	require.NotNil(t, login.RequestBody)

	content := login.RequestBody.Value.Content
	require.Contains(t, content, "application/x-www-form-urlencoded")
	properties := content["application/x-www-form-urlencoded"].Schema.Value.Properties
	assert.Contains(t, properties, "username")
	assert.Contains(t, properties, "password")
}

func TestJoinPath(t *testing.T) {
	tests := []struct {
		basePath string
		template string
		expected string
	}{
		{"", "", "/"},
		{"", "/users", "/users"},
		{"/api/v1", "/users/{id:int}", "/api/v1/users/{id}"},
		{"/api/v1/", "/users", "/api/v1/users"},
		{"/files", "/static/{*}", "/files/static/*"},
		{"api", "/users", "/api/users"},
	}

	for _, tt := range tests {
		got := joinPath(tt.basePath, retrofit.Template(tt.template))
		assert.Equal(t, tt.expected, got, "joinPath(%q, %q)", tt.basePath, tt.template)
	}
}

func TestPlaceholderSchema(t *testing.T) {
	assert.True(t, placeholderSchema("int").Type.Is("integer"))
	assert.True(t, placeholderSchema("float64").Type.Is("number"))
	assert.True(t, placeholderSchema("double").Type.Is("number"))
	assert.True(t, placeholderSchema("uuid").Type.Is("string"))
	assert.Equal(t, "uuid", placeholderSchema("UUID").Format)
	assert.True(t, placeholderSchema("string").Type.Is("string"))
	assert.True(t, placeholderSchema("").Type.Is("string"))
}
