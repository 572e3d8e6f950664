package domain

import "strconv"

// SampleQueries are the example questions listed by business-terms
var SampleQueries = []string{
	"Show me all facilities with limits over 1 million EUR",
	"What are the working capital facilities of Kronospan Asia as at 2023?",
	"Which companies have utilization over 80%?",
	"Compare loan amounts between Oxnard and Spanaco",
	"Generate a report on PKO BP facilities",
}

// demoScenarios are numbered 1 to len
var demoScenarios = []string{
	"Show me all working capital facilities with limits over 1 million EUR",
	"What are the total facilities of Kronospan Asia as at 2023?",
	"Which companies have utilization over 80%?",
	"Compare facility amounts between different banks",
	"Generate a report on PKO BP facilities",
}

// demoByKey indexes scenarios by their exact path segment, "1" upward
var demoByKey = func() map[string]string {
	m := make(map[string]string, len(demoScenarios))
	for i, q := range demoScenarios {
		m[strconv.Itoa(i+1)] = q
	}
	return m
}()

// DemoQuery returns the fixed question for a scenario key. Only the exact keys "1" to
// DemoCount match; "01" or "+1" do not
func DemoQuery(scenario string) (string, bool) {
	q, ok := demoByKey[scenario]
	return q, ok
}

// DemoCount is the number of demo scenarios
func DemoCount() int { return len(demoScenarios) }
