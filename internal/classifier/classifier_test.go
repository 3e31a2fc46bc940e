package classifier

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestParseActionSignature(t *testing.T) {
	method, uri, ok := ParseActionSignature("GET /users/{id}")
	assert.True(t, ok)
	assert.Equal(t, "GET", method)
	assert.Equal(t, "/users/{id}", uri)

	_, _, ok = ParseActionSignature("get /users")
	assert.False(t, ok, "lowercase method must not match")

	_, _, ok = ParseActionSignature("BOGUS /users")
	assert.False(t, ok)
}

func TestParseResourceSignature(t *testing.T) {
	name, uri, ok := ParseResourceSignature("Users Collection [/users]")
	assert.True(t, ok)
	assert.Equal(t, "Users Collection", name)
	assert.Equal(t, "/users", uri)

	name, uri, ok = ParseResourceSignature("/users/{id}")
	assert.True(t, ok)
	assert.Equal(t, "", name)
	assert.Equal(t, "/users/{id}", uri)

	_, _, ok = ParseResourceSignature("Not a resource")
	assert.False(t, ok)
}

func TestParseResourceGroupSignature(t *testing.T) {
	name, ok := ParseResourceGroupSignature("Group Users")
	assert.True(t, ok)
	assert.Equal(t, "Users", name)

	_, ok = ParseResourceGroupSignature("Grouping Users")
	assert.False(t, ok, "must match on a word boundary")
}

func TestClassifyHeaderDispatch(t *testing.T) {
	assert.Equal(t, Action, ClassifyHeader("GET /users", Resource))
	assert.Equal(t, Resource, ClassifyHeader("/users", ResourceGroup))
	assert.Equal(t, ResourceGroup, ClassifyHeader("Group Users", Undefined))
	assert.Equal(t, Undefined, ClassifyHeader("Group Users", Resource), "Group only recognized at the top level")
}

func TestClassifyListItem(t *testing.T) {
	assert.Equal(t, Headers, ClassifyListItem("Headers", Action))
	assert.Equal(t, Parameters, ClassifyListItem("parameters", Action))
	assert.Equal(t, Values, ClassifyListItem("Values", Parameters))
	assert.Equal(t, Undefined, ClassifyListItem("Values", Action), "Values only recognized under Parameters")
	assert.Equal(t, Body, ClassifyListItem("Body", Request))
	assert.Equal(t, Schema, ClassifyListItem("Schema", Request))
	assert.Equal(t, Request, ClassifyListItem("Request", Action))
	assert.Equal(t, Response, ClassifyListItem("Response 200", Action))
	assert.Equal(t, Model, ClassifyListItem("Model", Resource))
	assert.Equal(t, Undefined, ClassifyListItem("some text", Action))
}

func TestParseMediaTypeSuffix(t *testing.T) {
	name, mediaType := ParseMediaTypeSuffix("200 (application/json)")
	assert.Equal(t, "200", name)
	assert.Equal(t, "application/json", mediaType)

	name, mediaType = ParseMediaTypeSuffix("200")
	assert.Equal(t, "200", name)
	assert.Equal(t, "", mediaType)
}
