package entity

// TextStyle controls the typography of one named receipt section.
type TextStyle struct {
	FontSize int  `json:"font_size"`
	Bold     bool `json:"bold"`
}

// InvoiceSettings is the single global record driving both the live receipt
// preview and print rendering. It is owned by the store API; the terminal
// fetches it and falls back to defaults when the fetch fails.
type InvoiceSettings struct {
	BusinessName     string               `json:"business_name"`
	Address          string               `json:"address"`
	Phone            string               `json:"phone,omitempty"`
	PaperWidthMM     float64              `json:"paper_width_mm"`
	MarginMM         float64              `json:"margin_mm"`
	LogoURL          string               `json:"logo,omitempty"`
	ShowLogo         bool                 `json:"show_logo"`
	ShowPrescription bool                 `json:"show_prescription"`
	FooterText       string               `json:"footer_text,omitempty"`
	Styles           map[string]TextStyle `json:"text_styles,omitempty"`
}

// DefaultInvoiceSettings returns the layout used when the settings record
// cannot be fetched.
func DefaultInvoiceSettings() *InvoiceSettings {
	return &InvoiceSettings{
		BusinessName:     "Optical Shop",
		PaperWidthMM:     80,
		ShowPrescription: true,
		FooterText:       "Thank you for your business!",
	}
}
