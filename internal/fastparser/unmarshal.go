package fastparser

// Unmarshal parses data as a single request or response.
// Uses stack-allocated Parser to avoid heap allocation.
func Unmarshal(data []byte) (*Message, error) {
	var p Parser
	initParser(&p, data)
	return p.Parse()
}

// Validate checks that data is a well-formed message without returning it.
func Validate(data []byte) error {
	_, err := Unmarshal(data)
	return err
}
