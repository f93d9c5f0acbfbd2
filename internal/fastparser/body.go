package fastparser

// extractBody returns every byte left after the header block, or nil when
// nothing is left. Content-Length and Transfer-Encoding are not consulted.
func extractBody(c *Cursor) []byte {
	return c.Rest()
}
