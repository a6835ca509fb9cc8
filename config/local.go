package config

// Local is the embedded on-device store.
type Local struct {
	Dir      string `json:"dir" yaml:"dir"`
	InMemory bool   `json:"in_memory" yaml:"in_memory"`
	// Node is the snowflake node id for locally generated record ids.
	Node int64 `json:"node" yaml:"node"`
}

// Slot holds durable flags and backups outside the embedded store.
type Slot struct {
	Driver string `json:"driver" yaml:"driver"` // file | redis
	Dir    string `json:"dir" yaml:"dir"`
	Prefix string `json:"prefix" yaml:"prefix"`
}
