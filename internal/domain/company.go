package domain

// CompanyInfo is the letterhead identity printed on every document.
type CompanyInfo struct {
	Name    string `json:"name" yaml:"name"`
	Tagline string `json:"tagline" yaml:"tagline"`
	Address string `json:"address" yaml:"address"`
	Phone   string `json:"phone" yaml:"phone"`
	Email   string `json:"email" yaml:"email"`
	LogoURL string `json:"logo_url" yaml:"logo_url"`
}
