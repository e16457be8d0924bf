package model

// Registration is a company-formation submission. All fields except the
// server-assigned timestamp come from the client; optional fields that are
// absent render as "N/A" in the notification summary rather than being
// omitted, so the template shape stays stable for the reader.
type Registration struct {
	CompanyName      string        `json:"companyName"`
	CompanyType      string        `json:"companyType,omitempty"`
	SicCodes         []string      `json:"sicCodes,omitempty"`
	RegisteredOffice OfficeAddress `json:"registeredOffice,omitempty"`
	Directors        []Officer     `json:"directors,omitempty"`
	Shareholders     []Shareholder `json:"shareholders,omitempty"`
	PSCs             []PSC         `json:"pscs,omitempty"`
	ContactEmail     string        `json:"contactEmail,omitempty"`
	PaymentIntentID  string        `json:"paymentIntentId,omitempty"`

	// Timestamp is assigned by the server at submission time, RFC3339 UTC
	Timestamp string `json:"timestamp,omitempty"`
}

// OfficeAddress is the registered office address of the new company
type OfficeAddress struct {
	AddressLine1 string `json:"addressLine1,omitempty"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city,omitempty"`
	Postcode     string `json:"postcode,omitempty"`
	Country      string `json:"country,omitempty"`
}

// Officer is a company director
type Officer struct {
	FullName    string `json:"fullName,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	Occupation  string `json:"occupation,omitempty"`
}

// Shareholder holds a person and their allotted shares
type Shareholder struct {
	FullName string `json:"fullName,omitempty"`
	Shares   int    `json:"shares,omitempty"`
}

// PSC is a person with significant control, included in submissions
// verbatim as a UK regulatory disclosure
type PSC struct {
	FullName        string `json:"fullName,omitempty"`
	NatureOfControl string `json:"natureOfControl,omitempty"`
}
