package request

// TransitionRequest parameterizes a lifecycle event on a quote.
//
// ExpectedVersion is optional; when set, the transition fails with a
// conflict if the quote advanced past that version since the caller read it.

type TransitionRequest struct {
	Reason          string `json:"reason"`
	ExpectedVersion int    `json:"expected_version"`
}
