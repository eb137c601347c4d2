package domain

import "time"

// ServiceType classifies the service for catalog defaults.
type ServiceType string

// Known service types for the privacy policy generator.
const (
	ServiceTypeSaaS      ServiceType = "saas"
	ServiceTypeCommerce  ServiceType = "commerce"
	ServiceTypeCommunity ServiceType = "community"
	ServiceTypeApp       ServiceType = "app"
	ServiceTypeOffline   ServiceType = "offline"
)

// IsValid reports whether the service type is a known value.
func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceTypeSaaS, ServiceTypeCommerce, ServiceTypeCommunity, ServiceTypeApp, ServiceTypeOffline:
		return true
	default:
		return false
	}
}

// ServiceTypeLabels maps service types to display labels.
var ServiceTypeLabels = map[ServiceType]string{
	ServiceTypeSaaS:      "SaaS",
	ServiceTypeCommerce:  "커머스",
	ServiceTypeCommunity: "커뮤니티",
	ServiceTypeApp:       "앱",
	ServiceTypeOffline:   "오프라인 연계",
}

// ServiceInfo holds the business facts for a privacy policy.
// All fields are free text; only the three required fields
// (ServiceName, CompanyName, ContactEmail) gate step progression.
type ServiceInfo struct {
	ServiceName           string      `json:"serviceName"`
	CompanyName           string      `json:"companyName"`
	ServiceType           ServiceType `json:"serviceType"`
	ContactEmail          string      `json:"contactEmail"`
	ContactPhone          string      `json:"contactPhone"`
	PrivacyOfficerName    string      `json:"privacyOfficerName"`
	PrivacyOfficerContact string      `json:"privacyOfficerContact"`
}

// RequiredFilled returns how many of the three required fields are set.
func (s ServiceInfo) RequiredFilled() int {
	n := 0
	for _, f := range []string{s.ServiceName, s.CompanyName, s.ContactEmail} {
		if f != "" {
			n++
		}
	}
	return n
}

// ServiceInfoPatch is a partial update to ServiceInfo.
// Nil fields are left unchanged by the merge.
type ServiceInfoPatch struct {
	ServiceName           *string
	CompanyName           *string
	ServiceType           *ServiceType
	ContactEmail          *string
	ContactPhone          *string
	PrivacyOfficerName    *string
	PrivacyOfficerContact *string
}

// Apply merges the patch into the service info.
func (p ServiceInfoPatch) Apply(info *ServiceInfo) {
	if p.ServiceName != nil {
		info.ServiceName = *p.ServiceName
	}
	if p.CompanyName != nil {
		info.CompanyName = *p.CompanyName
	}
	if p.ServiceType != nil {
		info.ServiceType = *p.ServiceType
	}
	if p.ContactEmail != nil {
		info.ContactEmail = *p.ContactEmail
	}
	if p.ContactPhone != nil {
		info.ContactPhone = *p.ContactPhone
	}
	if p.PrivacyOfficerName != nil {
		info.PrivacyOfficerName = *p.PrivacyOfficerName
	}
	if p.PrivacyOfficerContact != nil {
		info.PrivacyOfficerContact = *p.PrivacyOfficerContact
	}
}

// RetentionPeriod is the retention choice for a processing item.
type RetentionPeriod string

// Retention period choices offered by the wizard.
const (
	RetentionWithdrawal RetentionPeriod = "withdrawal"
	RetentionOneYear    RetentionPeriod = "1year"
	RetentionThreeYears RetentionPeriod = "3years"
	RetentionFiveYears  RetentionPeriod = "5years"
	RetentionCustom     RetentionPeriod = "custom"
)

// OutsourcingEntry describes one outsourcing arrangement for an item.
type OutsourcingEntry struct {
	// ID addresses the entry for removal; unique within its list.
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	Task        string `json:"task"`
	Country     string `json:"country"`
}

// ThirdPartyEntry describes one third-party sharing arrangement.
type ThirdPartyEntry struct {
	ID              string `json:"id"`
	Recipient       string `json:"recipient"`
	Purpose         string `json:"purpose"`
	Items           string `json:"items"`
	RetentionPeriod string `json:"retentionPeriod"`
}

// OverseasTransfer describes an overseas data transfer for an item.
type OverseasTransfer struct {
	Country      string `json:"country"`
	TransferDate string `json:"transferDate"`
	Method       string `json:"method"`
	Trustee      string `json:"trustee"`
	Contact      string `json:"contact"`
}

// DetailInput is the user-entered elaboration for one selected item.
type DetailInput struct {
	Purpose             string             `json:"purpose"`
	Items               []string           `json:"items"`
	CustomItems         string             `json:"customItems"`
	RetentionPeriod     RetentionPeriod    `json:"retentionPeriod"`
	CustomRetention     string             `json:"customRetention"`
	HasOutsourcing      bool               `json:"hasOutsourcing"`
	OutsourcingList     []OutsourcingEntry `json:"outsourcingList"`
	HasThirdParty       bool               `json:"hasThirdParty"`
	ThirdPartyList      []ThirdPartyEntry  `json:"thirdPartyList"`
	HasOverseasTransfer bool               `json:"hasOverseasTransfer"`
	OverseasInfo        *OverseasTransfer  `json:"overseasInfo"`
}

// NewDetailInput returns an empty detail record with the default
// retention choice.
func NewDetailInput() DetailInput {
	return DetailInput{
		Items:           []string{},
		RetentionPeriod: RetentionWithdrawal,
		OutsourcingList: []OutsourcingEntry{},
		ThirdPartyList:  []ThirdPartyEntry{},
	}
}

// DetailInputPatch is a partial update to a DetailInput.
// Nil fields are left unchanged; the nested lists are managed through
// their own add/remove operations, not through the patch.
type DetailInputPatch struct {
	Purpose             *string
	Items               *[]string
	CustomItems         *string
	RetentionPeriod     *RetentionPeriod
	CustomRetention     *string
	HasOutsourcing      *bool
	HasThirdParty       *bool
	HasOverseasTransfer *bool
}

// Apply merges the patch into the detail input.
func (p DetailInputPatch) Apply(in *DetailInput) {
	if p.Purpose != nil {
		in.Purpose = *p.Purpose
	}
	if p.Items != nil {
		in.Items = *p.Items
	}
	if p.CustomItems != nil {
		in.CustomItems = *p.CustomItems
	}
	if p.RetentionPeriod != nil {
		in.RetentionPeriod = *p.RetentionPeriod
	}
	if p.CustomRetention != nil {
		in.CustomRetention = *p.CustomRetention
	}
	if p.HasOutsourcing != nil {
		in.HasOutsourcing = *p.HasOutsourcing
	}
	if p.HasThirdParty != nil {
		in.HasThirdParty = *p.HasThirdParty
	}
	if p.HasOverseasTransfer != nil {
		in.HasOverseasTransfer = *p.HasOverseasTransfer
	}
}

// DocumentSection is one titled block of an assembled privacy policy.
type DocumentSection struct {
	// ID is the stable section identifier (header, purpose, ...).
	ID string `json:"id"`

	// Title is the rendered heading, empty for header and footer.
	Title string `json:"title"`

	// Content is the section body as HTML fragments.
	Content string `json:"content"`

	// Order is the 1-based emission position.
	Order int `json:"order"`
}

// GeneratedDocument is an assembled privacy policy.
type GeneratedDocument struct {
	Title string `json:"title"`

	// Content is the concatenation of all section contents in order.
	Content string `json:"content"`

	Sections []DocumentSection `json:"sections"`

	GeneratedAt time.Time `json:"generatedAt"`

	Version int `json:"version"`
}

// Section returns the section with the given id, or nil.
func (d *GeneratedDocument) Section(id string) *DocumentSection {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			return &d.Sections[i]
		}
	}
	return nil
}
