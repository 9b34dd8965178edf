/*
Package resilience provides the circuit breaker guarding daemon calls.

The transport client routes every unary RPC through a breaker so a dead or
wedged daemon fails fast instead of stacking timeouts. The event stream is
not routed through it; reconnection there is handled by backoff.

# Usage

	breaker := resilience.New("transport", resilience.Settings{
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts resilience.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	result, err := breaker.Execute(func() (interface{}, error) {
		return client.Call()
	})

# States

	Closed --[failures]-> Open --[timeout]-> Half-Open --[successes]-> Closed

Half-Open admits MaxRequests probes; one failure reopens the breaker. The
current state is exported through the health and metrics endpoints.
*/
package resilience
