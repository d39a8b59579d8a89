package jsonapi

// ResourceBuilder assembles a Resource. Attributes and meta are allocated
// on first use so a resource with neither renders as {type, id}.
type ResourceBuilder struct {
	res Resource
}

// NewResource starts a resource of the given type and id.
func NewResource(resourceType, id string) *ResourceBuilder {
	return &ResourceBuilder{res: Resource{Type: resourceType, ID: id}}
}

// Attr sets an attribute. A nil value leaves the attribute out.
func (b *ResourceBuilder) Attr(key string, value any) *ResourceBuilder {
	if value == nil {
		return b
	}
	if b.res.Attributes == nil {
		b.res.Attributes = make(map[string]any)
	}
	b.res.Attributes[key] = value
	return b
}

// AttrString sets a string attribute, leaving it out when empty.
func (b *ResourceBuilder) AttrString(key, value string) *ResourceBuilder {
	if value == "" {
		return b
	}
	return b.Attr(key, value)
}

// Meta sets a meta member.
func (b *ResourceBuilder) Meta(key string, value any) *ResourceBuilder {
	if b.res.Meta == nil {
		b.res.Meta = make(Meta)
	}
	b.res.Meta[key] = value
	return b
}

// Failed marks a resource whose data could not be produced, recording the
// error code and message in meta.
func (b *ResourceBuilder) Failed(code, detail string) *ResourceBuilder {
	return b.Meta("code", code).Meta("error", detail)
}

func (b *ResourceBuilder) Build() Resource {
	return b.res
}
