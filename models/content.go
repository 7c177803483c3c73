package models

// Service is one consulting offer shown in the services grid
type Service struct {
	Icon        string
	Title       string
	Description string
	Price       string
}

// ProcessStep is one stage of the registration workflow
type ProcessStep struct {
	Step        string
	Title       string
	Description string
}

// SampleDocument is a downloadable template from the documents section
type SampleDocument struct {
	Slug        string
	Title       string
	Description string
	Icon        string
	Format      string // DOCX, PDF
	FileName    string // Storage key and download name
}

// Advantage is a bullet of the "about" section
type Advantage struct {
	Icon        string
	Title       string
	Description string
}

// Testimonial is a client review
type Testimonial struct {
	Name         string
	Organization string
	Text         string
	Rating       int
}

// FAQItem is a question with an answer that may contain limited inline markup
type FAQItem struct {
	Question string
	Answer   string
}

// PricingTier is a package in the pricing section
type PricingTier struct {
	Badge       string
	Name        string
	Price       string
	Description string
	Features    []string
	CTA         string
	Highlighted bool
}

// ContactChannel is a way to reach the office
type ContactChannel struct {
	Icon  string
	Title string
	Value string
	Note  string
	Href  string
}

// NavItem is an in-page anchor link of the header
type NavItem struct {
	Label  string
	Anchor string
}

// SiteContent holds all read-only reference data rendered on the landing page
type SiteContent struct {
	BrandName    string
	Tagline      string
	FoundedYear  int
	HeroImage    string
	AboutImage   string
	Nav          []NavItem
	Services     []Service
	Process      []ProcessStep
	Documents    []SampleDocument
	Advantages   []Advantage
	Testimonials []Testimonial
	FAQ          []FAQItem
	Pricing      []PricingTier
	Contacts     []ContactChannel
}
