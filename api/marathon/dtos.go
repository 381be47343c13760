package marathon

// AppDTO is the subset of a Marathon application definition the harness
// reads back. Unknown fields in the listing are ignored.
type AppDTO struct {
	ID        string   `json:"id"`
	Cmd       string   `json:"cmd,omitempty"`
	Instances int      `json:"instances,omitempty"`
	CPUs      float64  `json:"cpus,omitempty"`
	Mem       float64  `json:"mem,omitempty"`
	Args      []string `json:"args,omitempty"`
}

type ErrorDTO struct {
	Message string `json:"message"`
}
