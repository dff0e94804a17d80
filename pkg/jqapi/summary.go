package jqapi

// Summary is the JSON view of an entry served by the HTTP and MCP front-ends.
type Summary struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Identifier  string   `json:"identifier"`
	Category    string   `json:"category"`
	Description string   `json:"description,omitempty"`
	Return      string   `json:"return,omitempty"`
	Added       string   `json:"added,omitempty"`
	Deprecated  string   `json:"deprecated,omitempty"`
	Removed     string   `json:"removed,omitempty"`
	Signatures  []string `json:"signatures"`
}

// Summary describes the entry. Signatures are formatted as calls, e.g.
// "addClass(className String)".
func (e *Entry) Summary() Summary {
	s := Summary{
		Name:        e.Name,
		Type:        string(e.Type),
		Identifier:  e.identifier,
		Category:    string(e.Category()),
		Description: e.Description,
		Return:      e.Return,
		Signatures:  make([]string, 0, len(e.Signatures)),
	}
	if v := e.Added(); v != nil {
		s.Added = v.Original()
	}
	if e.Deprecated != nil {
		s.Deprecated = e.Deprecated.Original()
	}
	if e.Removed != nil {
		s.Removed = e.Removed.Original()
	}
	for _, sig := range e.Signatures {
		s.Signatures = append(s.Signatures, e.Call(sig))
	}
	return s
}
