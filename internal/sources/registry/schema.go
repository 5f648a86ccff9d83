package registry

// File is the top-level structure of a commands.yaml seed file.
type File struct {
	Commands []CommandSpec `yaml:"commands"`
}

// CommandSpec is one seeded command. Enabled defaults to true when omitted.
type CommandSpec struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Category    string `yaml:"category,omitempty"`
	Enabled     *bool  `yaml:"enabled,omitempty"`
}
