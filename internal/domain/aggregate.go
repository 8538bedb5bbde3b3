package domain

// AggregatedTest is the cross-platform view of one test name. Platforms is
// keyed by the suite id each record carries on the wire.
type AggregatedTest struct {
	Name      string               `json:"name"`
	Status    Status               `json:"status"`
	Platforms map[string]RawResult `json:"platforms_id"`
}

// Aggregate maps test names to their cross-platform entries. It is written
// to while documents are folded in and read-only afterwards.
type Aggregate map[string]*AggregatedTest
