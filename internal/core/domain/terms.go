package domain

import "time"

// TermsServiceType classifies the service for terms-feature defaults.
type TermsServiceType string

// Known service types for the terms generator.
const (
	TermsTypeSaaS      TermsServiceType = "saas"
	TermsTypeCommerce  TermsServiceType = "commerce"
	TermsTypeCommunity TermsServiceType = "community"
	TermsTypeApp       TermsServiceType = "app"
	TermsTypeContent   TermsServiceType = "content"
	TermsTypePlatform  TermsServiceType = "platform"
)

// IsValid reports whether the terms service type is a known value.
func (t TermsServiceType) IsValid() bool {
	switch t {
	case TermsTypeSaaS, TermsTypeCommerce, TermsTypeCommunity, TermsTypeApp, TermsTypeContent, TermsTypePlatform:
		return true
	default:
		return false
	}
}

// TermsServiceTypeLabels maps terms service types to display labels.
var TermsServiceTypeLabels = map[TermsServiceType]string{
	TermsTypeSaaS:      "SaaS",
	TermsTypeCommerce:  "커머스/쇼핑몰",
	TermsTypeCommunity: "커뮤니티",
	TermsTypeApp:       "모바일 앱",
	TermsTypeContent:   "콘텐츠",
	TermsTypePlatform:  "플랫폼",
}

// TermsServiceInfo holds the business facts for a terms document.
type TermsServiceInfo struct {
	ServiceName          string           `json:"serviceName"`
	CompanyName          string           `json:"companyName"`
	ServiceType          TermsServiceType `json:"serviceType"`
	CompanyAddress       string           `json:"companyAddress"`
	BusinessRegistration string           `json:"businessRegistration"`
	ContactEmail         string           `json:"contactEmail"`
	ContactPhone         string           `json:"contactPhone"`
	Representative       string           `json:"representative"`
}

// RequiredFilled returns how many of the three required fields are set.
func (s TermsServiceInfo) RequiredFilled() int {
	n := 0
	for _, f := range []string{s.ServiceName, s.CompanyName, s.ContactEmail} {
		if f != "" {
			n++
		}
	}
	return n
}

// TermsServiceInfoPatch is a partial update to TermsServiceInfo.
// Nil fields are left unchanged by the merge.
type TermsServiceInfoPatch struct {
	ServiceName          *string
	CompanyName          *string
	ServiceType          *TermsServiceType
	CompanyAddress       *string
	BusinessRegistration *string
	ContactEmail         *string
	ContactPhone         *string
	Representative       *string
}

// Apply merges the patch into the service info.
func (p TermsServiceInfoPatch) Apply(info *TermsServiceInfo) {
	if p.ServiceName != nil {
		info.ServiceName = *p.ServiceName
	}
	if p.CompanyName != nil {
		info.CompanyName = *p.CompanyName
	}
	if p.ServiceType != nil {
		info.ServiceType = *p.ServiceType
	}
	if p.CompanyAddress != nil {
		info.CompanyAddress = *p.CompanyAddress
	}
	if p.BusinessRegistration != nil {
		info.BusinessRegistration = *p.BusinessRegistration
	}
	if p.ContactEmail != nil {
		info.ContactEmail = *p.ContactEmail
	}
	if p.ContactPhone != nil {
		info.ContactPhone = *p.ContactPhone
	}
	if p.Representative != nil {
		info.Representative = *p.Representative
	}
}

// TermsFeatureDetails carries the per-feature detail fields. Only the
// fields relevant to a given feature are ever populated.
type TermsFeatureDetails struct {
	PaymentMethods     []string `json:"paymentMethods,omitempty"`
	RefundPolicy       string   `json:"refundPolicy,omitempty"`
	WithdrawalPeriod   string   `json:"withdrawalPeriod,omitempty"`
	AutoRenewal        bool     `json:"autoRenewal,omitempty"`
	CancellationNotice string   `json:"cancellationNotice,omitempty"`
	PriceChangeNotice  string   `json:"priceChangeNotice,omitempty"`
	ShippingPeriod     string   `json:"shippingPeriod,omitempty"`
	ReturnPeriod       string   `json:"returnPeriod,omitempty"`
	ExchangePolicy     string   `json:"exchangePolicy,omitempty"`
	ContentLicense     string   `json:"contentLicense,omitempty"`
	ReportPolicy       string   `json:"reportPolicy,omitempty"`
	BanCriteria        string   `json:"banCriteria,omitempty"`
	AIDisclaimer       string   `json:"aiDisclaimer,omitempty"`
	DataUsage          bool     `json:"dataUsage,omitempty"`
	LocationPurpose    string   `json:"locationPurpose,omitempty"`
	LocationRetention  string   `json:"locationRetention,omitempty"`
	GoverningLaw       string   `json:"governingLaw,omitempty"`
	Arbitration        string   `json:"arbitration,omitempty"`
	ParentalConsent    bool     `json:"parentalConsent,omitempty"`
	AgeLimit           string   `json:"ageLimit,omitempty"`
}

// TermsFeatureInput is the user-entered record for one feature.
type TermsFeatureInput struct {
	Enabled bool                `json:"enabled"`
	Details TermsFeatureDetails `json:"details"`
}

// TermsArticle is one numbered article of a terms document.
type TermsArticle struct {
	// ID is the stable article identifier within its chapter.
	ID string `json:"id"`

	// ArticleNumber is the document-wide sequential number (제N조).
	ArticleNumber int `json:"articleNumber"`

	Title string `json:"title"`

	Content string `json:"content"`
}

// TermsChapter groups articles under a numbered chapter (제N장).
type TermsChapter struct {
	ID            string         `json:"id"`
	ChapterNumber int            `json:"chapterNumber"`
	Title         string         `json:"title"`
	Articles      []TermsArticle `json:"articles"`
}

// GeneratedTerms is an assembled terms-of-service document.
type GeneratedTerms struct {
	Title string `json:"title"`

	// Content is the full document rendered chapter by chapter.
	Content string `json:"content"`

	Chapters []TermsChapter `json:"chapters"`

	GeneratedAt time.Time `json:"generatedAt"`

	Version int `json:"version"`
}

// Chapter returns the chapter with the given id, or nil.
func (t *GeneratedTerms) Chapter(id string) *TermsChapter {
	for i := range t.Chapters {
		if t.Chapters[i].ID == id {
			return &t.Chapters[i]
		}
	}
	return nil
}
