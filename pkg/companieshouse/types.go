package companieshouse

// Company is a single search result from the company search endpoint.
// Only the fields this service consumes are mapped.
type Company struct {
	Title          string  `json:"title"`
	CompanyNumber  string  `json:"company_number"`
	CompanyStatus  string  `json:"company_status"`
	CompanyType    string  `json:"company_type"`
	DateOfCreation string  `json:"date_of_creation"`
	Address        Address `json:"address"`
}

// Address is the registered office address attached to a search result
type Address struct {
	Premises     string `json:"premises"`
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2"`
	Locality     string `json:"locality"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

// SearchResponse is the response from GET /search/companies
type SearchResponse struct {
	TotalResults int       `json:"total_results"`
	ItemsPerPage int       `json:"items_per_page"`
	StartIndex   int       `json:"start_index"`
	Items        []Company `json:"items"`
}

// ErrorResponse is the error body returned by the Companies House API
type ErrorResponse struct {
	Errors []struct {
		Error string `json:"error"`
		Type  string `json:"type"`
	} `json:"errors"`
}
