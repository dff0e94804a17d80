package dto

// CatalogDocument is the YAML/JSON layout of an API catalog.
// It uses "mapstructure" tags so documents decoded into generic maps can be mapped directly.
type CatalogDocument struct {
	API     string         `json:"api" mapstructure:"api"`
	Entries []CatalogEntry `json:"entries" mapstructure:"entries"`
}

// CatalogEntry is one documented method, property or selector.
type CatalogEntry struct {
	Type        string             `json:"type" mapstructure:"type"`
	Name        string             `json:"name" mapstructure:"name"`
	Return      string             `json:"return" mapstructure:"return"`
	Added       string             `json:"added" mapstructure:"added"`
	Deprecated  string             `json:"deprecated" mapstructure:"deprecated"`
	Removed     string             `json:"removed" mapstructure:"removed"`
	Description string             `json:"desc" mapstructure:"desc"`
	Signatures  []CatalogSignature `json:"signatures" mapstructure:"signatures"`
}

type CatalogSignature struct {
	Added string            `json:"added" mapstructure:"added"`
	Args  []CatalogArgument `json:"args" mapstructure:"args"`
}

type CatalogArgument struct {
	Name        string `json:"name" mapstructure:"name"`
	Type        string `json:"type" mapstructure:"type"`
	Optional    bool   `json:"optional" mapstructure:"optional"`
	Repeat      bool   `json:"repeat" mapstructure:"repeat"`
	Description string `json:"desc" mapstructure:"desc"`
}
