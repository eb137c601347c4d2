package domain

// DocType identifies which wizard a persisted state belongs to.
type DocType string

// Document types handled by the generator.
const (
	DocTypePolicy DocType = "privacy-policy"
	DocTypeTerms  DocType = "terms-of-service"
)

// IsValid reports whether the document type is a known value.
func (d DocType) IsValid() bool {
	return d == DocTypePolicy || d == DocTypeTerms
}

// Step is one stage of the guided wizard. Both wizards share the same
// five-stage shape; only the selection stage differs in what it selects.
type Step string

// Wizard steps in progression order.
const (
	StepServiceInfo Step = "service-info"
	StepSelect      Step = "select"
	StepDetail      Step = "detail-input"
	StepPreview     Step = "preview"
	StepExport      Step = "export"
)

// StepLabel carries the display metadata for one wizard step.
type StepLabel struct {
	Title         string
	Subtitle      string
	EstimatedTime string
}

// Steps lists the wizard stages in order.
var Steps = []Step{StepServiceInfo, StepSelect, StepDetail, StepPreview, StepExport}

// PolicyStepLabels maps steps to display metadata for the privacy wizard.
var PolicyStepLabels = map[Step]StepLabel{
	StepServiceInfo: {Title: "서비스 기본 정보", Subtitle: "서비스의 기본 정보를 입력해주세요", EstimatedTime: "1분"},
	StepSelect:      {Title: "처리 항목 선택", Subtitle: "수집하는 개인정보 항목을 선택해주세요", EstimatedTime: "2분"},
	StepDetail:      {Title: "상세 입력", Subtitle: "선택한 항목의 상세 정보를 입력해주세요", EstimatedTime: "3분"},
	StepPreview:     {Title: "문서 미리보기", Subtitle: "생성된 개인정보처리방침을 확인하세요", EstimatedTime: "2분"},
	StepExport:      {Title: "다운로드/배포", Subtitle: "문서를 다운로드하거나 배포하세요", EstimatedTime: "1분"},
}

// TermsStepLabels maps steps to display metadata for the terms wizard.
var TermsStepLabels = map[Step]StepLabel{
	StepServiceInfo: {Title: "서비스 기본 정보", Subtitle: "서비스의 기본 정보를 입력해주세요", EstimatedTime: "1분"},
	StepSelect:      {Title: "기능 선택", Subtitle: "서비스에서 제공하는 기능을 선택해주세요", EstimatedTime: "2분"},
	StepDetail:      {Title: "상세 입력", Subtitle: "선택한 기능의 상세 정보를 입력해주세요", EstimatedTime: "3분"},
	StepPreview:     {Title: "문서 미리보기", Subtitle: "생성된 이용약관을 확인하세요", EstimatedTime: "2분"},
	StepExport:      {Title: "다운로드/배포", Subtitle: "문서를 다운로드하거나 배포하세요", EstimatedTime: "1분"},
}

// PolicyState is the complete persisted state of the privacy wizard.
type PolicyState struct {
	CurrentStep Step `json:"currentStep"`

	ServiceInfo ServiceInfo `json:"serviceInfo"`

	// SelectedItems preserves selection order and holds no duplicates.
	SelectedItems []string `json:"selectedItems"`

	// DetailInputs may hold records for deselected items; they are
	// retained so re-selecting restores prior input.
	DetailInputs map[string]DetailInput `json:"detailInputs"`

	Document *GeneratedDocument `json:"document"`

	IsAdvancedMode bool `json:"isAdvancedMode"`

	// CompletionRate is the derived 0-100 score, stored for display.
	CompletionRate int `json:"completionRate"`
}

// NewPolicyState returns the initial privacy wizard state.
func NewPolicyState() *PolicyState {
	return &PolicyState{
		CurrentStep:   StepServiceInfo,
		SelectedItems: []string{},
		DetailInputs:  map[string]DetailInput{},
	}
}

// IsSelected reports whether the item id is currently selected.
func (s *PolicyState) IsSelected(id string) bool {
	for _, sel := range s.SelectedItems {
		if sel == id {
			return true
		}
	}
	return false
}

// CanProceed reports whether the validation gate for step progression
// passes: all required service fields set and at least one selection.
func (s *PolicyState) CanProceed() bool {
	return s.ServiceInfo.RequiredFilled() == 3 && len(s.SelectedItems) > 0
}

// TermsState is the complete persisted state of the terms wizard.
type TermsState struct {
	CurrentStep Step `json:"currentStep"`

	ServiceInfo TermsServiceInfo `json:"serviceInfo"`

	SelectedFeatures []string `json:"selectedFeatures"`

	FeatureInputs map[string]TermsFeatureInput `json:"featureInputs"`

	Document *GeneratedTerms `json:"document"`

	IsAdvancedMode bool `json:"isAdvancedMode"`

	CompletionRate int `json:"completionRate"`
}

// NewTermsState returns the initial terms wizard state. The basic
// feature set is always selected and cannot be removed.
func NewTermsState() *TermsState {
	return &TermsState{
		CurrentStep:      StepServiceInfo,
		SelectedFeatures: []string{"basic"},
		FeatureInputs: map[string]TermsFeatureInput{
			"basic": {Enabled: true},
		},
	}
}

// IsSelected reports whether the feature id is currently selected.
func (s *TermsState) IsSelected(id string) bool {
	for _, sel := range s.SelectedFeatures {
		if sel == id {
			return true
		}
	}
	return false
}

// CanProceed reports whether the validation gate passes.
func (s *TermsState) CanProceed() bool {
	return s.ServiceInfo.RequiredFilled() == 3 && len(s.SelectedFeatures) > 0
}
