package quote_duration

// QuoteRequest HTTP request model
type QuoteRequest struct {
	ServiceIDs []string `json:"serviceIds" validate:"max=20,dive,required"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	TotalMinutes  int `json:"totalMinutes"`
	BufferMinutes int `json:"bufferMinutes"`
}
