// Package blueprint defines the typed abstract syntax tree produced by
// parsing an API Blueprint document: resource groups, resources,
// actions, payloads, parameters, and the top-level metadata that
// describes an HTTP API.
//
// Every node is owned by its parent and created once during parsing;
// nothing is shared or mutated by more than the section parser that
// produced it.
package blueprint

// KeyValue is an ordered (key, value) pair, used for metadata and
// headers where both order and duplicates-preserved-verbatim matter.
type KeyValue struct {
	Key   string
	Value string
}

// Use indicates whether a Parameter is required or optional.
type Use int

const (
	UndefinedUse Use = iota
	Required
	Optional
)

// Parameter describes one URI template or request parameter.
type Parameter struct {
	Name         string
	Description  string
	Type         string
	RequiredFlag bool
	Use          Use
	Default      string
	Example      string
	Values       []string
}

// Payload is a request, response, or model body: a signature, optional
// description, nested sections, and either an inline body/schema or a
// reference to a named model.
type Payload struct {
	Name            string
	MediaType       string
	Description     string
	Parameters      []Parameter
	Headers         []KeyValue
	Body            string
	Schema          string
	SymbolReference string
	Reference       *Payload // resolved target, when SymbolReference is set
}

// TransactionExample groups one or more requests with their
// corresponding responses for a single action.
type TransactionExample struct {
	Name        string
	Description string
	Requests    []Payload
	Responses   []Payload
}

// Action is one HTTP method section of a resource.
type Action struct {
	Name        string
	Method      string
	Description string
	Parameters  []Parameter
	Headers     []KeyValue
	Examples    []TransactionExample
}

// Resource is a URI template with its own parameters/headers, an
// optional data-structure model, and the HTTP methods (actions) it
// supports.
type Resource struct {
	Name        string
	URITemplate string
	Description string
	Model       *Payload
	Parameters  []Parameter
	Headers     []KeyValue
	Actions     []Action
}

// ResourceGroup is a named collection of resources, document order
// preserved.
type ResourceGroup struct {
	Name        string
	Description string
	Resources   []Resource
}

// Blueprint is the root of the parsed document.
type Blueprint struct {
	Metadata       []KeyValue
	Name           string
	Description    string
	ResourceGroups []ResourceGroup
}
