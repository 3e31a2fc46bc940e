// Package serialize renders a parsed blueprint.Blueprint to YAML or
// JSON using the fixed key vocabulary and deterministic ordering the
// CLI's consumers depend on. The AST itself carries no serialization
// tags; this package owns an intermediate DTO tree so the two concerns
// stay separate.
package serialize

import "github.com/zendesk/snowcrash/internal/blueprint"

// ASTVersion is emitted at the root of every serialized document so
// downstream tooling can detect a vocabulary change.
const ASTVersion = "1.0"

type keyValueDTO struct {
	Key   string `json:"key"   yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

type parameterDTO struct {
	Name        string   `json:"name"                  yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Type        string   `json:"type,omitempty"        yaml:"type,omitempty"`
	Required    bool     `json:"required"               yaml:"required"`
	Default     string   `json:"default,omitempty"     yaml:"default,omitempty"`
	Example     string   `json:"example,omitempty"     yaml:"example,omitempty"`
	Values      []string `json:"values,omitempty"      yaml:"values,omitempty"`
}

type payloadDTO struct {
	Name       string         `json:"name,omitempty"       yaml:"name,omitempty"`
	Reference  string         `json:"reference,omitempty"  yaml:"reference,omitempty"`
	Parameters []parameterDTO `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Headers    []keyValueDTO  `json:"headers,omitempty"    yaml:"headers,omitempty"`
	Body       string         `json:"body,omitempty"       yaml:"body,omitempty"`
	Schema     string         `json:"schema,omitempty"     yaml:"schema,omitempty"`
}

type transactionDTO struct {
	Name      string       `json:"name,omitempty" yaml:"name,omitempty"`
	Requests  []payloadDTO `json:"requests"       yaml:"requests"`
	Responses []payloadDTO `json:"responses"      yaml:"responses"`
}

type actionDTO struct {
	Method       string           `json:"method"                yaml:"method"`
	Name         string           `json:"name,omitempty"        yaml:"name,omitempty"`
	Description  string           `json:"description,omitempty" yaml:"description,omitempty"`
	Parameters   []parameterDTO   `json:"parameters,omitempty"  yaml:"parameters,omitempty"`
	Headers      []keyValueDTO    `json:"headers,omitempty"     yaml:"headers,omitempty"`
	Transactions []transactionDTO `json:"transactions"          yaml:"transactions"`
}

type resourceDTO struct {
	Name        string        `json:"name,omitempty"        yaml:"name,omitempty"`
	URITemplate string        `json:"uriTemplate"           yaml:"uriTemplate"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Model       *payloadDTO   `json:"model,omitempty"       yaml:"model,omitempty"`
	Parameters  []parameterDTO `json:"parameters,omitempty"  yaml:"parameters,omitempty"`
	Headers     []keyValueDTO  `json:"headers,omitempty"     yaml:"headers,omitempty"`
	Actions     []actionDTO    `json:"actions"               yaml:"actions"`
}

type resourceGroupDTO struct {
	Name        string        `json:"name,omitempty"        yaml:"name,omitempty"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Resources   []resourceDTO `json:"resources"             yaml:"resources"`
}

type blueprintDTO struct {
	ASTVersion     string             `json:"ast_version"             yaml:"ast_version"`
	Metadata       []keyValueDTO      `json:"metadata,omitempty"      yaml:"metadata,omitempty"`
	Name           string             `json:"name,omitempty"          yaml:"name,omitempty"`
	Description    string             `json:"description,omitempty"  yaml:"description,omitempty"`
	ResourceGroups []resourceGroupDTO `json:"resourceGroups"          yaml:"resourceGroups"`
}

func toKeyValueDTOs(pairs []blueprint.KeyValue) []keyValueDTO {
	if len(pairs) == 0 {
		return nil
	}
	out := make([]keyValueDTO, len(pairs))
	for i, kv := range pairs {
		out[i] = keyValueDTO{Key: kv.Key, Value: kv.Value}
	}

	return out
}

func toParameterDTOs(params []blueprint.Parameter) []parameterDTO {
	if len(params) == 0 {
		return nil
	}
	out := make([]parameterDTO, len(params))
	for i, p := range params {
		out[i] = parameterDTO{
			Name:        p.Name,
			Description: p.Description,
			Type:        p.Type,
			Required:    p.Use == blueprint.Required,
			Default:     p.Default,
			Example:     p.Example,
			Values:      p.Values,
		}
	}

	return out
}

func toPayloadDTO(p blueprint.Payload) payloadDTO {
	return payloadDTO{
		Name:       p.Name,
		Reference:  p.SymbolReference,
		Parameters: toParameterDTOs(p.Parameters),
		Headers:    toKeyValueDTOs(p.Headers),
		Body:       p.Body,
		Schema:     p.Schema,
	}
}

func toPayloadDTOs(payloads []blueprint.Payload) []payloadDTO {
	out := make([]payloadDTO, len(payloads))
	for i, p := range payloads {
		out[i] = toPayloadDTO(p)
	}

	return out
}

func toTransactionDTOs(examples []blueprint.TransactionExample) []transactionDTO {
	out := make([]transactionDTO, len(examples))
	for i, ex := range examples {
		out[i] = transactionDTO{
			Name:      ex.Name,
			Requests:  toPayloadDTOs(ex.Requests),
			Responses: toPayloadDTOs(ex.Responses),
		}
	}

	return out
}

func toActionDTOs(actions []blueprint.Action) []actionDTO {
	out := make([]actionDTO, len(actions))
	for i, a := range actions {
		out[i] = actionDTO{
			Method:       a.Method,
			Name:         a.Name,
			Description:  a.Description,
			Parameters:   toParameterDTOs(a.Parameters),
			Headers:      toKeyValueDTOs(a.Headers),
			Transactions: toTransactionDTOs(a.Examples),
		}
	}

	return out
}

func toResourceDTOs(resources []blueprint.Resource) []resourceDTO {
	out := make([]resourceDTO, len(resources))
	for i, r := range resources {
		dto := resourceDTO{
			Name:        r.Name,
			URITemplate: r.URITemplate,
			Description: r.Description,
			Parameters:  toParameterDTOs(r.Parameters),
			Headers:     toKeyValueDTOs(r.Headers),
			Actions:     toActionDTOs(r.Actions),
		}
		if r.Model != nil {
			model := toPayloadDTO(*r.Model)
			dto.Model = &model
		}
		out[i] = dto
	}

	return out
}

func toBlueprintDTO(bp blueprint.Blueprint) blueprintDTO {
	groups := make([]resourceGroupDTO, len(bp.ResourceGroups))
	for i, g := range bp.ResourceGroups {
		groups[i] = resourceGroupDTO{
			Name:        g.Name,
			Description: g.Description,
			Resources:   toResourceDTOs(g.Resources),
		}
	}

	return blueprintDTO{
		ASTVersion:     ASTVersion,
		Metadata:       toKeyValueDTOs(bp.Metadata),
		Name:           bp.Name,
		Description:    bp.Description,
		ResourceGroups: groups,
	}
}
