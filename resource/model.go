package resource

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// TypeName is the CloudFormation type this provider manages
const TypeName = "Robert::WebhookConfig::Repository"

// IdentifierKeyID is the JSON pointer of the primary identifier in the resource schema
const IdentifierKeyID = "/properties/Id"

/* Model is the desired or previous state of one repository webhook
 * Uses value semantics as it represents data, not behavior
 * An empty string means the property is absent
 */
type Model struct {
	ID                 string
	ServiceUsername    string
	ServiceAppPassword string
	Workspace          string
	Repository         string
	WebhookURL         string
}

// field binds a wire property name to the Model field holding it
type field struct {
	name string
	ref  func(m *Model) *string
}

// modelFields is the explicit mapping between resource properties and Model fields
var modelFields = []field{
	{name: "Id", ref: func(m *Model) *string { return &m.ID }},
	{name: "ServiceUsername", ref: func(m *Model) *string { return &m.ServiceUsername }},
	{name: "ServiceAppPassword", ref: func(m *Model) *string { return &m.ServiceAppPassword }},
	{name: "Workspace", ref: func(m *Model) *string { return &m.Workspace }},
	{name: "Repository", ref: func(m *Model) *string { return &m.Repository }},
	{name: "WebhookUrl", ref: func(m *Model) *string { return &m.WebhookURL }},
}

// ModelFromProperties builds a Model from decoded resource properties
// Unknown properties are ignored
func ModelFromProperties(props map[string]any) (Model, error) {
	var m Model
	for _, f := range modelFields {
		raw, ok := props[f.name]
		if !ok {
			continue
		}
		value, err := stringValue(raw)
		if err != nil {
			return Model{}, fmt.Errorf("property %s: %w", f.name, err)
		}
		*f.ref(&m) = value
	}
	return m, nil
}

// Properties returns the non-empty fields keyed by their wire names
func (m Model) Properties() map[string]any {
	props := make(map[string]any, len(modelFields))
	for _, f := range modelFields {
		if value := *f.ref(&m); value != "" {
			props[f.name] = value
		}
	}
	return props
}

// PrimaryIdentifier returns the identifier document, or nil when the ID is not known yet
func (m Model) PrimaryIdentifier() map[string]string {
	if m.ID == "" {
		return nil
	}
	return map[string]string{IdentifierKeyID: m.ID}
}

// MarshalJSON encodes the model with its wire property names
func (m Model) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Properties())
}

// UnmarshalJSON decodes resource properties, null leaves the model untouched
func (m *Model) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var props map[string]any
	if err := json.Unmarshal(data, &props); err != nil {
		return fmt.Errorf("unmarshaling model: %w", err)
	}
	parsed, err := ModelFromProperties(props)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// stringValue coerces a scalar property to string, the way the resource schema types every property
func stringValue(v any) (string, error) {
	switch value := v.(type) {
	case nil:
		return "", nil
	case string:
		return value, nil
	case bool:
		return strconv.FormatBool(value), nil
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(value), nil
	case json.Number:
		return value.String(), nil
	default:
		return "", fmt.Errorf("expected a string, got %T", v)
	}
}
