package subset

import "fmt"

// ContractError is returned when the fonts service answers with a stylesheet
// that carries no woff2 source declaration, so no font file can be located.
type ContractError struct {
	URL     string
	Message string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("unexpected subset stylesheet from %s: %s", e.URL, e.Message)
}
