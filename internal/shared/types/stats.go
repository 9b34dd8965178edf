package types

// DiscoveryStats contains discovery host statistics
type DiscoveryStats struct {
	Streams     int `json:"streams"`
	Live        int `json:"live"`
	Launched    int `json:"launched"`
	Inspectable int `json:"inspectable"`
	Listeners   int `json:"listeners"`
}

// TargetStats contains target manager statistics
type TargetStats struct {
	Pending  int `json:"pending"`
	Attached int `json:"attached"`
	Failed   int `json:"failed"`
}

// JournalStats contains journal store statistics
type JournalStats struct {
	Entries int64  `json:"entries"`
	Path    string `json:"path,omitempty"`
}
