package record

// Version is the current record format
const Version = "1.0"

// SentinelRecord is one sentinel. Value is text so NaN and Inf survive JSON;
// Bits is the raw float32 encoding and is what Verify compares.
type SentinelRecord struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Bits  uint32 `json:"bits"`
}

// HostRecord is the host summary stored with a run
type HostRecord struct {
	Hostname    string `json:"hostname,omitempty"`
	Platform    string `json:"platform"`
	Arch        string `json:"arch"`
	CPUModel    string `json:"cpuModel,omitempty"`
	LogicalCPUs int    `json:"logicalCpus"`
	TotalMemory uint64 `json:"totalMemory"`
}

// Record contains everything needed to repeat and check a run
type Record struct {
	Version        string           `json:"version"`
	Scenario       string           `json:"scenario"`
	Layout         string           `json:"layout"`
	Seed           int64            `json:"seed"`
	Population     int              `json:"population"`
	Iterations     int              `json:"iterations"`
	DT             float32          `json:"dt,omitempty"`
	StartTime      string           `json:"startTime"`
	ElapsedMs      float64          `json:"elapsedMs"`
	PerIterationMs float64          `json:"perIterationMs"`
	Sentinels      []SentinelRecord `json:"sentinels"`
	Host           *HostRecord      `json:"host,omitempty"`
}
