package utils

// FullURL rebuilds a display link from the configured base URL and a
// stored ticket id. It is a plain concatenation on purpose: the base is
// configuration, so changing it rewrites every displayed link without a
// data migration. No validation happens here; a malformed ticket id comes
// back concatenated as-is.
func FullURL(base, ticketID string) string {
	return base + ticketID
}

// TicketURL is the nil-tolerant form used when decorating API responses.
// A missing ticket id yields a missing link.
func TicketURL(base string, ticketID *string) *string {
	if ticketID == nil {
		return nil
	}
	url := FullURL(base, *ticketID)
	return &url
}
